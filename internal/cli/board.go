package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/filler/internal/config"
	"github.com/aretw0/filler/internal/logging"
	"github.com/aretw0/filler/internal/presentation/graph"
	"github.com/aretw0/filler/internal/presentation/tui"
	"github.com/aretw0/filler/pkg/domain"
	"github.com/muesli/termenv"
)

// BoardOptions configures PrintBoard.
type BoardOptions struct {
	Seed   int64
	Format string // text, json or color
}

// PrintBoard generates the opening position for a seed and writes it to w.
func PrintBoard(ctx context.Context, w io.Writer, opts BoardOptions) error {
	cfg := config.Default()
	cfg.Seed = opts.Seed
	game, err := createGame(cfg, logging.NewNop(), domain.LifecycleHooks{})
	if err != nil {
		return err
	}
	st, err := game.Start(ctx)
	if err != nil {
		return err
	}
	snap := game.Snapshot(st)

	switch opts.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Seed int64 `json:"seed"`
			domain.Snapshot
		}{st.Seed, snap})
	case "", "text", "color":
		profile := termenv.Ascii
		if opts.Format == "color" {
			profile = termenv.ColorProfile()
		}
		out, err := tui.NewBoardRenderer(profile).Render(snap)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "seed %d\n%s", st.Seed, out)
		return nil
	default:
		return fmt.Errorf("unknown board format %q", opts.Format)
	}
}

// PrintRules writes the rules, rendered for the terminal when styled.
func PrintRules(w io.Writer, styled bool) error {
	style := "notty"
	if styled {
		style = ""
	}
	render, err := tui.NewRenderer(style)
	if err != nil {
		return err
	}
	out, err := render(tui.RulesMarkdown)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// PrintPhaseDiagram writes the turn phase machine as a Mermaid flowchart.
func PrintPhaseDiagram(w io.Writer) error {
	_, err := fmt.Fprint(w, graph.GenerateMermaid(&graph.Overlay{Current: domain.PhaseAwaitingChoice}))
	return err
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	return isTerminal(w)
}
