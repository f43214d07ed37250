package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/muesli/termenv"
)

// BoardRenderer paints snapshots with terminal colors.
type BoardRenderer struct {
	profile termenv.Profile
}

// NewBoardRenderer creates a renderer for the given color profile.
// Use termenv.ColorProfile() for the current terminal and termenv.Ascii for
// plain output.
func NewBoardRenderer(p termenv.Profile) *BoardRenderer {
	return &BoardRenderer{profile: p}
}

// Render draws one row per line. Every cell shows the first letter of its
// color followed by its owner (1, 2 or '.'), on the color itself when the
// profile supports it. A legend and the side to move follow the grid.
func (r *BoardRenderer) Render(snap domain.Snapshot) (string, error) {
	if len(snap.Colors) < snap.Size || len(snap.Owners) < snap.Size {
		return "", fmt.Errorf("snapshot has %d color rows and %d owner rows, want %d", len(snap.Colors), len(snap.Owners), snap.Size)
	}

	var b strings.Builder
	for row := 0; row < snap.Size; row++ {
		for col := 0; col < snap.Size; col++ {
			b.WriteString(r.cell(snap.Colors[row][col], snap.Owners[row][col]))
		}
		b.WriteByte('\n')
	}

	b.WriteString(r.Legend())
	b.WriteByte('\n')
	if !snap.GameOver && snap.Active.Valid() {
		fmt.Fprintf(&b, "Turn %d, %s to move (holding %s)\n", snap.Turn+1, snap.Active.Label(), snap.Anchors[snap.Active-1])
	}
	return b.String(), nil
}

// Legend lists every choice index with its color name.
func (r *BoardRenderer) Legend() string {
	parts := make([]string, 0, domain.PaletteSize)
	for _, c := range domain.Palette() {
		name := r.profile.String(c.String()).Foreground(r.profile.Color(c.Hex())).String()
		parts = append(parts, fmt.Sprintf("%d:%s", c.Index(), name))
	}
	return strings.Join(parts, " ")
}

func (r *BoardRenderer) cell(c domain.Color, owner domain.Player) string {
	mark := "."
	if owner.Valid() {
		mark = fmt.Sprintf("%d", owner)
	}
	text := fmt.Sprintf(" %c%s ", c.String()[0], mark)
	return r.profile.String(text).
		Foreground(r.profile.Color("#000000")).
		Background(r.profile.Color(c.Hex())).
		String()
}
