package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/aretw0/filler/pkg/ports"
)

// Runner drives a game from the first snapshot to the final verdict using
// an IOHandler for everything the players see and type.
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler (or JSONHandler
	// when Headless) is built over Input and Output.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer BoardRenderer

	initialState *domain.State
	signals      *SignalManager
}

// NewRunner creates a Runner reading Stdin and writing Stdout by default.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run plays until the game is over, the players quit or ctx is cancelled.
// It returns the last state in every case, so a caller can still report
// the score of an interrupted game.
func (r *Runner) Run(ctx context.Context, game ports.StatelessGame) (*domain.State, error) {
	handler := r.resolveHandler()

	state := r.initialState
	if state == nil {
		var err error
		state, err = game.Start(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create initial state: %w", err)
		}
	}

	signals := r.signals
	if signals == nil {
		signals = NewSignalManager(ctx)
	}
	defer signals.Stop()

	dirty := true
	for {
		currentCtx := signals.Context()

		// A. Render only after a committed move; a rejected choice leaves
		// the board as the players last saw it.
		snap := game.Snapshot(state)
		if dirty {
			if err := handler.Output(currentCtx, snap); err != nil {
				return state, fmt.Errorf("output error: %w", err)
			}
			dirty = false
		}
		if snap.GameOver {
			if err := handler.SystemOutput(currentCtx, snap.Outcome.String()); err != nil {
				return state, fmt.Errorf("output error: %w", err)
			}
			return state, nil
		}

		// B. Input
		raw, err := r.readChoice(currentCtx, handler, signals)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("input closed", "game_id", state.ID, "turn", state.Turn)
				return state, nil
			}
			return state, err
		}

		color, err := domain.ParseColor(raw)
		if err != nil {
			r.report(currentCtx, handler, fmt.Sprintf("%q is not a color. Choose 0-5 or one of %s.", raw, paletteNames()))
			continue
		}

		// C. Commit
		res, err := game.Submit(currentCtx, state, state.Active, color)
		if err != nil {
			if ctxErr := currentCtx.Err(); ctxErr != nil {
				return state, ctxErr
			}
			r.report(currentCtx, handler, rejection(err, color))
			continue
		}
		if res.NoOp {
			r.report(currentCtx, handler, fmt.Sprintf("%s already holds %s. Pick another color.", res.Player.Label(), color))
			continue
		}

		r.Logger.Debug("move committed", "game_id", state.ID, "turn", state.Turn, "player", res.Player, "color", color, "cells_added", res.CellsAdded)
		dirty = true
	}
}

func (r *Runner) readChoice(ctx context.Context, handler IOHandler, signals *SignalManager) (string, error) {
	val, err := handler.Input(ctx)
	if err != nil {
		// Ctrl+C may close stdin just before the signal lands.
		signals.CheckRace()
		if ctx.Err() != nil {
			r.Logger.Debug("runner input: context cancelled", "err", ctx.Err())
			return "", fmt.Errorf("interrupted: %w", ctx.Err())
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("input error: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(val)) {
	case "exit", "quit":
		return "", io.EOF
	}
	return val, nil
}

func (r *Runner) report(ctx context.Context, handler IOHandler, msg string) {
	if err := handler.SystemOutput(ctx, msg); err != nil {
		r.Logger.Warn("system output failed", "err", err)
	}
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	if r.Headless {
		r.Handler = NewJSONHandler(r.Input, r.Output)
		return r.Handler
	}
	// Memoize to prevent creating new pumps on subsequent Run calls
	r.Handler = NewTextHandler(r.Input, r.Output, WithTextHandlerRenderer(r.Renderer))
	return r.Handler
}

func rejection(err error, c domain.Color) string {
	switch {
	case errors.Is(err, domain.ErrOpponentColor):
		return fmt.Sprintf("%s is your opponent's color. Pick another color.", c)
	case errors.Is(err, domain.ErrGameOver):
		return "The game is already over."
	default:
		return fmt.Sprintf("Choice rejected: %v", err)
	}
}

func paletteNames() string {
	names := make([]string, 0, domain.PaletteSize)
	for _, c := range domain.Palette() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
