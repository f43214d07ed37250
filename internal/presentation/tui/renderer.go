package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// An empty style detects the terminal background; "notty" gives plain text.
func NewRenderer(style string) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(80))
	if err != nil {
		return nil, err
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// SummaryMarkdown describes a finished (or abandoned) game: the verdict,
// the score line and a table of committed moves.
func SummaryMarkdown(outcome domain.Outcome, history []domain.Move) string {
	var b strings.Builder
	b.WriteString("# ")
	if outcome.GameOver {
		b.WriteString(outcome.String())
	} else {
		b.WriteString("Game abandoned")
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Player 1 score: **%d**, Player 2 score: **%d**\n", outcome.Player1Score, outcome.Player2Score)

	var moves []domain.Move
	for _, m := range history {
		if !m.NoOp {
			moves = append(moves, m)
		}
	}
	if len(moves) == 0 {
		return b.String()
	}

	b.WriteString("\n| Turn | Player | Color | Cells |\n|---:|---|---|---:|\n")
	for _, m := range moves {
		fmt.Fprintf(&b, "| %d | %s | %s | %d |\n", m.Turn, m.Player.Label(), m.Color, m.CellsAdded)
	}
	return b.String()
}
