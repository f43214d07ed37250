package filler

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/filler/internal/runtime"
	"github.com/aretw0/filler/pkg/domain"
	"github.com/aretw0/filler/pkg/region"
)

// Game is the high-level entry point of the library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Game struct {
	runtime  *runtime.Engine
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	seed     int64
	scoring  string
	starting domain.Player
	rules    runtime.Rules
	newID    func() string
}

// Option defines a functional option for configuring the Game.
type Option func(*Game)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(g *Game) {
		g.hooks = g.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the game.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithSeed fixes the board generation seed. Zero (the default) seeds from the clock.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// WithScoring selects the live scoring policy ("cells" or "region").
func WithScoring(policy string) Option {
	return func(g *Game) {
		g.scoring = policy
	}
}

// WithStartingPlayer selects who moves first.
func WithStartingPlayer(p domain.Player) Option {
	return func(g *Game) {
		g.starting = p
	}
}

// WithForbidOpponentColor rejects choices equal to the opponent's anchor color.
func WithForbidOpponentColor(forbid bool) Option {
	return func(g *Game) {
		g.rules.ForbidOpponentColor = forbid
	}
}

// WithIDGenerator overrides how game IDs are produced (default: random UUID).
func WithIDGenerator(gen func() string) Option {
	return func(g *Game) {
		g.newID = gen
	}
}

// New initializes a Game.
func New(opts ...Option) (*Game, error) {
	g := &Game{starting: domain.Player1}
	for _, opt := range opts {
		opt(g)
	}

	policy, err := domain.ParseScoringPolicy(g.scoring)
	if err != nil {
		return nil, err
	}
	if !g.starting.Valid() {
		return nil, fmt.Errorf("invalid starting player %v", g.starting)
	}

	// Ensure logger is initialized so the runtime never logs to nil
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g.runtime = runtime.NewEngine(
		runtime.WithLifecycleHooks(g.hooks),
		runtime.WithLogger(g.logger),
		runtime.WithRules(g.rules),
		runtime.WithScoring(policy),
		runtime.WithStartingPlayer(g.starting),
		runtime.WithSeed(g.seed),
		runtime.WithIDGenerator(g.newID),
	)
	return g, nil
}

// Start generates a random board and returns the initial state.
func (g *Game) Start(ctx context.Context) (*domain.State, error) {
	return g.runtime.Start(ctx)
}

// StartWithBoard opens a game on a prepared board (see domain.NewBoard).
func (g *Game) StartWithBoard(ctx context.Context, board *domain.Board) (*domain.State, error) {
	return g.runtime.StartWithBoard(ctx, board)
}

// Submit commits a color choice for player p.
func (g *Game) Submit(ctx context.Context, st *domain.State, p domain.Player, c domain.Color) (domain.ExpansionResult, error) {
	return g.runtime.Submit(ctx, st, p, c)
}

// SubmitIndex commits a 0..5 color index for the active player.
func (g *Game) SubmitIndex(ctx context.Context, st *domain.State, index int) (domain.ExpansionResult, error) {
	return g.runtime.SubmitIndex(ctx, st, index)
}

// Snapshot returns the full board, ownership and score view for rendering.
func (g *Game) Snapshot(st *domain.State) domain.Snapshot {
	return g.runtime.Snapshot(st)
}

// Outcome returns the current score line and verdict.
func (g *Game) Outcome(st *domain.State) domain.Outcome {
	return g.runtime.Outcome(st)
}

// IsTerminal reports whether every cell has an owner.
func (g *Game) IsTerminal(st *domain.State) bool {
	return runtime.IsTerminal(st)
}

// Preview returns the cells p would hold after choosing c, row-major.
// It returns nil when c is p's anchor color.
func (g *Game) Preview(st *domain.State, p domain.Player, c domain.Color) []domain.Pos {
	set, ok := region.Capturable(st.Board, p, c)
	if !ok {
		return nil
	}
	return set.Sorted()
}
