package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/google/uuid"
)

// Engine is the turn controller. It owns no game state: every call receives
// the *domain.State it acts on.
type Engine struct {
	rules    Rules
	scoring  domain.ScoringPolicy
	starting domain.Player
	seed     int64
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	newID    func() string
	now      func() time.Time
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRules sets the optional rule switches.
func WithRules(rules Rules) EngineOption {
	return func(e *Engine) {
		e.rules = rules
	}
}

// WithScoring selects the live scoring policy.
func WithScoring(policy domain.ScoringPolicy) EngineOption {
	return func(e *Engine) {
		e.scoring = policy
	}
}

// WithStartingPlayer selects who moves first (default Player1).
func WithStartingPlayer(p domain.Player) EngineOption {
	return func(e *Engine) {
		if p.Valid() {
			e.starting = p
		}
	}
}

// WithSeed fixes the board generation seed. Zero means time based.
func WithSeed(seed int64) EngineOption {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithIDGenerator overrides how game IDs are produced.
func WithIDGenerator(gen func() string) EngineOption {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// NewEngine creates a turn controller.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		scoring:  domain.ScoreCells,
		starting: domain.Player1,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start generates a random board and opens a game on it.
func (e *Engine) Start(ctx context.Context) (*domain.State, error) {
	seed := e.seed
	if seed == 0 {
		seed = e.now().UnixNano()
	}
	board := domain.GenerateBoard(rand.New(rand.NewSource(seed)))
	st, err := e.StartWithBoard(ctx, board)
	if err != nil {
		return nil, err
	}
	st.Seed = seed
	return st, nil
}

// StartWithBoard opens a game on a prepared board. Both anchors are seeded
// with their owner before the first move.
func (e *Engine) StartWithBoard(ctx context.Context, board *domain.Board) (*domain.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if board == nil {
		return nil, fmt.Errorf("board is required")
	}
	board.SeedAnchors()
	st := domain.NewState(e.newID(), board, e.starting)

	e.logger.Debug("game started", "game_id", st.ID, "size", board.Size(), "starting", st.Active)
	if e.hooks.OnGameStart != nil {
		e.hooks.OnGameStart(ctx, &domain.GameEvent{
			EventBase: e.base(domain.EventGameStart, st),
			Outcome:   e.Outcome(st),
		})
	}
	return st, nil
}

// Submit commits a color choice for p and advances the turn machine.
//
// A choice equal to p's anchor color comes back with NoOp set; p stays the
// active player. Rejected choices leave the state untouched.
func (e *Engine) Submit(ctx context.Context, st *domain.State, p domain.Player, choice domain.Color) (domain.ExpansionResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ExpansionResult{Player: p, Color: choice}, err
	}

	prevPhase := st.Phase
	if !st.Over() {
		st.Phase = domain.PhaseExpanding
	}
	res, err := Expand(st, p, choice, e.rules)
	if err != nil {
		st.Phase = prevPhase
		e.logger.Debug("choice rejected", "game_id", st.ID, "player", p, "color", choice, "err", err)
		if e.hooks.OnReject != nil {
			e.hooks.OnReject(ctx, &domain.MoveEvent{
				EventBase: e.base(domain.EventReject, st),
				Turn:      st.Turn,
				Result:    res,
				Err:       err,
			})
		}
		return res, err
	}

	if res.NoOp {
		st.Phase = domain.PhaseAwaitingChoice
		st.History = append(st.History, domain.Move{Turn: st.Turn, Player: p, Color: choice, NoOp: true})
		e.logger.Debug("choice is anchor color", "game_id", st.ID, "player", p, "color", choice)
		if e.hooks.OnNoOp != nil {
			e.hooks.OnNoOp(ctx, &domain.MoveEvent{
				EventBase: e.base(domain.EventNoOp, st),
				Turn:      st.Turn,
				Result:    res,
			})
		}
		return res, nil
	}

	st.Turn++
	st.History = append(st.History, domain.Move{Turn: st.Turn, Player: p, Color: choice, CellsAdded: res.CellsAdded})
	e.logger.Debug("expansion committed",
		"game_id", st.ID,
		"turn", st.Turn,
		"player", p,
		"color", choice,
		"cells_added", res.CellsAdded,
	)
	if e.hooks.OnExpand != nil {
		e.hooks.OnExpand(ctx, &domain.MoveEvent{
			EventBase: e.base(domain.EventExpand, st),
			Turn:      st.Turn,
			Result:    res,
		})
	}

	st.Phase = domain.PhaseScoringCheck
	if IsTerminal(st) {
		st.Phase = domain.PhaseGameOver
		outcome := e.Outcome(st)
		e.logger.Info("game over",
			"game_id", st.ID,
			"player1", outcome.Player1Score,
			"player2", outcome.Player2Score,
			"winner", outcome.Winner,
		)
		if e.hooks.OnGameOver != nil {
			e.hooks.OnGameOver(ctx, &domain.GameEvent{
				EventBase: e.base(domain.EventGameOver, st),
				Outcome:   outcome,
			})
		}
		return res, nil
	}

	from := st.Active
	st.Active = from.Opponent()
	st.Phase = domain.PhaseAwaitingChoice
	if e.hooks.OnTurn != nil {
		e.hooks.OnTurn(ctx, &domain.TurnEvent{
			EventBase: e.base(domain.EventTurn, st),
			From:      from,
			To:        st.Active,
		})
	}
	return res, nil
}

// SubmitIndex submits a 0..5 color index for the active player.
func (e *Engine) SubmitIndex(ctx context.Context, st *domain.State, index int) (domain.ExpansionResult, error) {
	color, err := domain.ColorFromIndex(index)
	if err != nil {
		return domain.ExpansionResult{Player: st.Active}, err
	}
	return e.Submit(ctx, st, st.Active, color)
}

// IsTerminal reports whether every cell has an owner.
func IsTerminal(st *domain.State) bool {
	return st.Board.Full()
}

func (e *Engine) base(t domain.EventType, st *domain.State) domain.EventBase {
	return domain.EventBase{Timestamp: e.now(), Type: t, GameID: st.ID}
}
