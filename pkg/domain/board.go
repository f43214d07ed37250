package domain

import (
	"fmt"
	"math/rand"
)

// Board holds the color grid and the parallel ownership grid.
// Generated boards are BoardSize wide; fixture boards built with NewBoard may
// be smaller. The zero value is not usable.
type Board struct {
	size   int
	colors [BoardSize][BoardSize]Color
	owners [BoardSize][BoardSize]Player
}

// NewBoard builds a board from explicit color rows. All cells start unowned.
func NewBoard(rows [][]Color) (*Board, error) {
	n := len(rows)
	if n == 0 || n > BoardSize {
		return nil, fmt.Errorf("board must have 1..%d rows, got %d", BoardSize, n)
	}
	b := &Board{size: n}
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("board must be square: row %d has %d cells, want %d", r, len(row), n)
		}
		for c, color := range row {
			if !color.Valid() {
				return nil, fmt.Errorf("%w: %d at %v", ErrInvalidColor, color, Pos{r, c})
			}
			b.colors[r][c] = color
		}
	}
	return b, nil
}

// GenerateBoard fills a BoardSize board in row-major order, resampling each
// cell until it differs from the cell above and the cell to its left.
func GenerateBoard(rng *rand.Rand) *Board {
	b := &Board{size: BoardSize}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			for {
				color := Color(rng.Intn(PaletteSize))
				if r > 0 && b.colors[r-1][c] == color {
					continue
				}
				if c > 0 && b.colors[r][c-1] == color {
					continue
				}
				b.colors[r][c] = color
				break
			}
		}
	}
	return b
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether p addresses a cell of the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// ColorAt returns the color of the cell at p.
func (b *Board) ColorAt(p Pos) (Color, error) {
	if !b.InBounds(p) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return b.colors[p.Row][p.Col], nil
}

// OwnerAt returns the owner of the cell at p, NoPlayer when unowned.
func (b *Board) OwnerAt(p Pos) (Player, error) {
	if !b.InBounds(p) {
		return NoPlayer, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return b.owners[p.Row][p.Col], nil
}

// Neighbors4 returns the in-bounds cells above, below, left and right of p.
func (b *Board) Neighbors4(p Pos) []Pos {
	out := make([]Pos, 0, 4)
	for _, d := range offsets4 {
		n := Pos{p.Row + d.Row, p.Col + d.Col}
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Anchor returns the home corner of a player: top-left for Player1 and
// bottom-right for Player2. Any other value yields an out-of-bounds position.
func (b *Board) Anchor(p Player) Pos {
	switch p {
	case Player1:
		return Pos{0, 0}
	case Player2:
		return Pos{b.size - 1, b.size - 1}
	default:
		return Pos{-1, -1}
	}
}

// Paint recolors the cell at p.
func (b *Board) Paint(p Pos, c Color) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidColor, c)
	}
	b.colors[p.Row][p.Col] = c
	return nil
}

// Claim assigns the cell at p to player. It reports whether the owner changed.
// A cell owned by the other player is never reassigned.
func (b *Board) Claim(p Pos, player Player) (bool, error) {
	if !b.InBounds(p) {
		return false, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if !player.Valid() {
		return false, fmt.Errorf("cannot claim %v for %v", p, player)
	}
	switch b.owners[p.Row][p.Col] {
	case player:
		return false, nil
	case NoPlayer:
		b.owners[p.Row][p.Col] = player
		return true, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrOwnershipConflict, p)
	}
}

// SeedAnchors gives each player ownership of their home corner.
func (b *Board) SeedAnchors() {
	for _, p := range Players {
		a := b.Anchor(p)
		if b.owners[a.Row][a.Col] == NoPlayer {
			b.owners[a.Row][a.Col] = p
		}
	}
}

// Count returns the number of cells owned by player.
func (b *Board) Count(player Player) int {
	n := 0
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.owners[r][c] == player {
				n++
			}
		}
	}
	return n
}

// Full reports whether every cell has an owner.
func (b *Board) Full() bool {
	return b.Count(NoPlayer) == 0
}

// Cells returns the number of cells on the board.
func (b *Board) Cells() int {
	return b.size * b.size
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// Colors returns a copy of the color grid, row-major.
func (b *Board) Colors() [][]Color {
	out := make([][]Color, b.size)
	for r := range out {
		out[r] = append([]Color(nil), b.colors[r][:b.size]...)
	}
	return out
}

// Owners returns a copy of the ownership grid, row-major.
func (b *Board) Owners() [][]Player {
	out := make([][]Player, b.size)
	for r := range out {
		out[r] = append([]Player(nil), b.owners[r][:b.size]...)
	}
	return out
}

// CheckNoAdjacentDuplicates verifies the generation invariant: no cell shares
// its color with the cell above or to its left.
func (b *Board) CheckNoAdjacentDuplicates() error {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if r > 0 && b.colors[r][c] == b.colors[r-1][c] {
				return fmt.Errorf("cells %v and %v share color %v", Pos{r - 1, c}, Pos{r, c}, b.colors[r][c])
			}
			if c > 0 && b.colors[r][c] == b.colors[r][c-1] {
				return fmt.Errorf("cells %v and %v share color %v", Pos{r, c - 1}, Pos{r, c}, b.colors[r][c])
			}
		}
	}
	return nil
}
