package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/filler/internal/runtime"
	"github.com/aretw0/filler/internal/testutils"
	"github.com/aretw0/filler/pkg/domain"
)

var tieRows = testutils.TieRows()

func TestEngine_Start(t *testing.T) {
	ctx := context.Background()
	a, err := runtime.NewEngine(runtime.WithSeed(42)).Start(ctx)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	b, err := runtime.NewEngine(runtime.WithSeed(42)).Start(ctx)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if a.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", a.Seed)
	}
	if a.ID == b.ID {
		t.Errorf("Expected distinct game IDs, got %q twice", a.ID)
	}
	ca, cb := a.Board.Colors(), b.Board.Colors()
	for r := range ca {
		for c := range ca[r] {
			if ca[r][c] != cb[r][c] {
				t.Fatalf("Same seed produced different boards at %d,%d", r, c)
			}
		}
	}
	if err := a.Board.CheckNoAdjacentDuplicates(); err != nil {
		t.Errorf("Generated board broke the neighbor rule: %v", err)
	}
	if a.Board.Size() != domain.BoardSize {
		t.Errorf("Expected size %d, got %d", domain.BoardSize, a.Board.Size())
	}
	for _, p := range domain.Players {
		if got := a.Board.Count(p); got != 1 {
			t.Errorf("Expected %v to own its anchor only, got %d cells", p, got)
		}
	}
	if a.Active != domain.Player1 || a.Phase != domain.PhaseAwaitingChoice || a.Turn != 0 {
		t.Errorf("Unexpected initial state: active=%v phase=%v turn=%d", a.Active, a.Phase, a.Turn)
	}
}

func TestEngine_StartingPlayer(t *testing.T) {
	e := runtime.NewEngine(runtime.WithSeed(1), runtime.WithStartingPlayer(domain.Player2))
	st, err := e.Start(context.Background())
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if st.Active != domain.Player2 {
		t.Errorf("Expected player2 to move first, got %v", st.Active)
	}
}

func TestEngine_StartWithBoard_RequiresBoard(t *testing.T) {
	if _, err := runtime.NewEngine().StartWithBoard(context.Background(), nil); err == nil {
		t.Error("Expected error for nil board")
	}
}

func TestEngine_PlaysToTie(t *testing.T) {
	e, st := startOn(t, tieRows)
	ctx := context.Background()

	res, err := e.Submit(ctx, st, domain.Player1, G)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if res.CellsAdded != 1 {
		t.Errorf("Expected 1 cell added, got %d", res.CellsAdded)
	}
	if st.Active != domain.Player2 || st.Turn != 1 {
		t.Fatalf("Expected player2 at turn 1, got %v at %d", st.Active, st.Turn)
	}

	if _, err := e.SubmitIndex(ctx, st, int(B)); err != nil {
		t.Fatalf("SubmitIndex failed: %v", err)
	}
	if !runtime.IsTerminal(st) || st.Phase != domain.PhaseGameOver {
		t.Fatalf("Expected game over, got phase %v", st.Phase)
	}

	o := e.Outcome(st)
	if !o.GameOver || !o.Tie || o.Winner != domain.NoPlayer {
		t.Errorf("Expected tie, got %+v", o)
	}
	if o.Player1Score != 2 || o.Player2Score != 2 {
		t.Errorf("Expected 2-2, got %d-%d", o.Player1Score, o.Player2Score)
	}
	if st.Active != domain.Player2 {
		t.Errorf("Active player must not change after the final move, got %v", st.Active)
	}

	_, err = e.Submit(ctx, st, domain.Player2, Y)
	if !errors.Is(err, domain.ErrGameOver) {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}
	if st.Phase != domain.PhaseGameOver {
		t.Errorf("Rejected move left phase %v", st.Phase)
	}
}

func TestEngine_NoOpKeepsTurn(t *testing.T) {
	e, st := startOn(t, tieRows)
	before := st.Board.Colors()

	res, err := e.Submit(context.Background(), st, domain.Player1, R)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !res.NoOp {
		t.Fatal("Expected NoOp for the anchor color")
	}
	if st.Active != domain.Player1 || st.Turn != 0 || st.Phase != domain.PhaseAwaitingChoice {
		t.Errorf("No-op advanced the game: active=%v turn=%d phase=%v", st.Active, st.Turn, st.Phase)
	}
	if len(st.History) != 1 || !st.History[0].NoOp {
		t.Errorf("Expected one no-op in history, got %+v", st.History)
	}
	after := st.Board.Colors()
	for r := range before {
		for c := range before[r] {
			if before[r][c] != after[r][c] {
				t.Errorf("No-op repainted %d,%d", r, c)
			}
		}
	}
}

func TestEngine_RejectLeavesStateUntouched(t *testing.T) {
	e, st := startOn(t, tieRows)
	ctx := context.Background()

	cases := []struct {
		name  string
		p     domain.Player
		color domain.Color
		index int
		want  error
	}{
		{name: "wrong player", p: domain.Player2, color: G, want: domain.ErrNotActivePlayer},
		{name: "bad color", p: domain.Player1, color: domain.Color(6), want: domain.ErrInvalidColor},
		{name: "bad index", index: 7, want: domain.ErrInvalidColor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			if tc.p == domain.NoPlayer {
				_, err = e.SubmitIndex(ctx, st, tc.index)
			} else {
				_, err = e.Submit(ctx, st, tc.p, tc.color)
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Expected %v, got %v", tc.want, err)
			}
			if st.Phase != domain.PhaseAwaitingChoice || st.Active != domain.Player1 || st.Turn != 0 {
				t.Errorf("State changed: %+v", st)
			}
			if len(st.History) != 0 {
				t.Errorf("Rejected move recorded: %+v", st.History)
			}
			if st.Board.Count(domain.NoPlayer) != 2 {
				t.Errorf("Rejected move claimed cells")
			}
		})
	}
}

func TestEngine_CancelledContext(t *testing.T) {
	e, st := startOn(t, tieRows)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Submit(ctx, st, domain.Player1, G); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if st.Board.Count(domain.Player1) != 1 {
		t.Error("Cancelled submit changed the board")
	}
	if _, err := e.Start(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected Start to honor cancellation, got %v", err)
	}
}

func TestEngine_LifecycleHooks(t *testing.T) {
	counts := map[domain.EventType]int{}
	var turns []domain.Player
	var final domain.Outcome
	var rejected error

	hooks := domain.LifecycleHooks{
		OnGameStart: func(_ context.Context, e *domain.GameEvent) { counts[e.Type]++ },
		OnExpand:    func(_ context.Context, e *domain.MoveEvent) { counts[e.Type]++ },
		OnNoOp:      func(_ context.Context, e *domain.MoveEvent) { counts[e.Type]++ },
		OnReject: func(_ context.Context, e *domain.MoveEvent) {
			counts[e.Type]++
			rejected = e.Err
		},
		OnTurn: func(_ context.Context, e *domain.TurnEvent) {
			counts[e.Type]++
			turns = append(turns, e.From, e.To)
		},
		OnGameOver: func(_ context.Context, e *domain.GameEvent) {
			counts[e.Type]++
			final = e.Outcome
		},
	}

	e, st := startOn(t, tieRows, runtime.WithLifecycleHooks(hooks))
	ctx := context.Background()
	_, _ = e.Submit(ctx, st, domain.Player1, R)
	_, _ = e.Submit(ctx, st, domain.Player2, G)
	_, _ = e.Submit(ctx, st, domain.Player1, G)
	_, _ = e.Submit(ctx, st, domain.Player2, B)

	want := map[domain.EventType]int{
		domain.EventGameStart: 1,
		domain.EventNoOp:      1,
		domain.EventReject:    1,
		domain.EventExpand:    2,
		domain.EventTurn:      1,
		domain.EventGameOver:  1,
	}
	for k, v := range want {
		if counts[k] != v {
			t.Errorf("Expected %d %s events, got %d", v, k, counts[k])
		}
	}
	if !errors.Is(rejected, domain.ErrNotActivePlayer) {
		t.Errorf("Expected reject event to carry ErrNotActivePlayer, got %v", rejected)
	}
	if len(turns) != 2 || turns[0] != domain.Player1 || turns[1] != domain.Player2 {
		t.Errorf("Unexpected turn events: %v", turns)
	}
	if !final.Tie {
		t.Errorf("Expected tie in game over event, got %+v", final)
	}
}
