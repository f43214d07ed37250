// Package testutils holds board fixtures shared by the test suites.
package testutils

import (
	"testing"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/aretw0/filler/pkg/region"
	"github.com/stretchr/testify/require"
)

// Board builds a fixture board from rows. All cells start unowned.
// It fails the test immediately on error.
func Board(t *testing.T, rows [][]domain.Color) *domain.Board {
	t.Helper()
	b, err := domain.NewBoard(rows)
	require.NoError(t, err, "Failed to build fixture board")
	return b
}

// TieRows is a 2x2 board where Player1 choosing green and Player2 choosing
// blue fills the board 2-2.
//
//	R G
//	B R
func TieRows() [][]domain.Color {
	return [][]domain.Color{
		{domain.Red, domain.Green},
		{domain.Blue, domain.Red},
	}
}

// Greedy picks the non-anchor color that adds the most cells for the active
// player, lowest index first on ties.
func Greedy(st *domain.State) domain.Color {
	p := st.Active
	anchor, _ := st.Board.ColorAt(st.Board.Anchor(p))
	best, gain := domain.Color(0), -1
	for _, c := range domain.Palette() {
		if c == anchor {
			continue
		}
		set, _ := region.Capturable(st.Board, p, c)
		if n := set.Len() - st.Board.Count(p); n > gain {
			best, gain = c, n
		}
	}
	return best
}
