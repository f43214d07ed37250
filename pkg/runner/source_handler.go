package runner

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/aretw0/filler/pkg/ports"
)

// SourceHandler adapts a ports.ChoiceSource and a ports.Presenter to the
// IOHandler contract, so devices that produce colors directly (switch banks,
// scripted players) can drive the Runner.
type SourceHandler struct {
	Source    ports.ChoiceSource
	Presenter ports.Presenter
	Logger    *slog.Logger
}

// NewSourceHandler creates a SourceHandler. presenter may be nil.
func NewSourceHandler(src ports.ChoiceSource, presenter ports.Presenter, logger *slog.Logger) *SourceHandler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SourceHandler{Source: src, Presenter: presenter, Logger: logger}
}

func (h *SourceHandler) Output(ctx context.Context, snap domain.Snapshot) error {
	if h.Presenter == nil {
		return nil
	}
	return h.Presenter.Present(ctx, snap)
}

func (h *SourceHandler) Input(ctx context.Context) (string, error) {
	c, err := h.Source.NextColorChoice(ctx)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// SystemOutput logs msg; sources have no channel back to the player.
func (h *SourceHandler) SystemOutput(ctx context.Context, msg string) error {
	h.Logger.InfoContext(ctx, msg)
	return nil
}

// Scripted returns a ChoiceSource that replays choices and then reports io.EOF.
func Scripted(choices ...domain.Color) ports.ChoiceSource {
	i := 0
	return ports.ChoiceSourceFunc(func(ctx context.Context) (domain.Color, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if i >= len(choices) {
			return 0, io.EOF
		}
		c := choices[i]
		i++
		return c, nil
	})
}
