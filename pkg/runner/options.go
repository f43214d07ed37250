package runner

import (
	"log/slog"

	"github.com/aretw0/filler/pkg/domain"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithHeadless selects the JSON lines handler when no handler is set.
func WithHeadless(headless bool) Option {
	return func(r *Runner) {
		r.Headless = headless
	}
}

// WithRenderer configures the board renderer used by the default text handler.
func WithRenderer(renderer BoardRenderer) Option {
	return func(r *Runner) {
		r.Renderer = renderer
	}
}

// WithInitialState resumes from an existing state instead of starting a new game.
func WithInitialState(state *domain.State) Option {
	return func(r *Runner) {
		r.initialState = state
	}
}

// WithSignalManager replaces the OS signal listener (useful in tests).
func WithSignalManager(sm *SignalManager) Option {
	return func(r *Runner) {
		r.signals = sm
	}
}
