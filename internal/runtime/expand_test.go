package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/filler/internal/runtime"
	"github.com/aretw0/filler/internal/testutils"
	"github.com/aretw0/filler/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	R = domain.Red
	G = domain.Green
	B = domain.Blue
	C = domain.Cyan
	M = domain.Magenta
	Y = domain.Yellow
)

func pos(r, c int) domain.Pos { return domain.Pos{Row: r, Col: c} }

// startOn opens a game on rows with anchors seeded and Player1 to move.
func startOn(t *testing.T, rows [][]domain.Color, opts ...runtime.EngineOption) (*runtime.Engine, *domain.State) {
	t.Helper()
	board := testutils.Board(t, rows)
	opts = append([]runtime.EngineOption{runtime.WithIDGenerator(func() string { return "test" })}, opts...)
	e := runtime.NewEngine(opts...)
	st, err := e.StartWithBoard(context.Background(), board)
	require.NoError(t, err)
	return e, st
}

// R R G B
// R G G B
// C C G Y
// M G G R
var ringRows = [][]domain.Color{
	{R, R, G, B},
	{R, G, G, B},
	{C, C, G, Y},
	{M, G, G, R},
}

func TestExpand_AbsorbsOneRing(t *testing.T) {
	_, st := startOn(t, ringRows)

	res, err := runtime.Expand(st, domain.Player1, G, runtime.Rules{})
	require.NoError(t, err)

	assert.False(t, res.NoOp)
	assert.Equal(t, R, res.Previous)
	assert.Equal(t, 8, res.CellsAdded)
	assert.Equal(t, []domain.Pos{
		pos(0, 0), pos(0, 1), pos(0, 2),
		pos(1, 0), pos(1, 1), pos(1, 2),
		pos(2, 2),
		pos(3, 1), pos(3, 2),
	}, res.Claimed)

	for _, p := range res.Claimed {
		c, _ := st.Board.ColorAt(p)
		o, _ := st.Board.OwnerAt(p)
		assert.Equal(t, G, c, "color at %v", p)
		assert.Equal(t, domain.Player1, o, "owner at %v", p)
	}

	// cyan cells now touch the region but were not the chosen color
	o, _ := st.Board.OwnerAt(pos(2, 0))
	assert.Equal(t, domain.NoPlayer, o)
	assert.Equal(t, 9, st.Board.Count(domain.Player1))
}

func TestExpand_NeverTakesOpponentCells(t *testing.T) {
	e, st := startOn(t, ringRows)
	ctx := context.Background()

	_, err := e.Submit(ctx, st, domain.Player1, G)
	require.NoError(t, err)

	// (3,2) is green and adjacent to Player2's anchor, but already owned.
	res, err := e.Submit(ctx, st, domain.Player2, G)
	require.NoError(t, err)
	assert.Equal(t, 0, res.CellsAdded)
	assert.Equal(t, []domain.Pos{pos(3, 3)}, res.Claimed)
	assert.Equal(t, 9, st.Board.Count(domain.Player1))
	assert.Equal(t, 1, st.Board.Count(domain.Player2))

	res, err = e.Submit(ctx, st, domain.Player1, C)
	require.NoError(t, err)
	assert.Equal(t, 2, res.CellsAdded)

	res, err = e.Submit(ctx, st, domain.Player2, Y)
	require.NoError(t, err)
	assert.Equal(t, []domain.Pos{pos(2, 3), pos(3, 3)}, res.Claimed)
	assert.Equal(t, 1, res.CellsAdded)
}

func TestExpand_AnchorColorIsNoOp(t *testing.T) {
	_, st := startOn(t, ringRows)
	colors, owners := st.Board.Colors(), st.Board.Owners()

	res, err := runtime.Expand(st, domain.Player1, R, runtime.Rules{})
	require.NoError(t, err)
	assert.True(t, res.NoOp)
	assert.Zero(t, res.CellsAdded)
	assert.Empty(t, res.Claimed)
	assert.Equal(t, colors, st.Board.Colors())
	assert.Equal(t, owners, st.Board.Owners())
}

func TestExpand_RejectionOrder(t *testing.T) {
	_, st := startOn(t, ringRows)

	_, err := runtime.Expand(st, domain.Player2, domain.Color(9), runtime.Rules{})
	assert.ErrorIs(t, err, domain.ErrInvalidColor, "color is checked before the turn")

	_, err = runtime.Expand(st, domain.Player2, G, runtime.Rules{})
	assert.ErrorIs(t, err, domain.ErrNotActivePlayer)

	st.Phase = domain.PhaseGameOver
	_, err = runtime.Expand(st, domain.Player2, G, runtime.Rules{})
	assert.ErrorIs(t, err, domain.ErrGameOver, "game over wins over turn order")

	_, err = runtime.Expand(st, domain.Player1, domain.Color(255), runtime.Rules{})
	assert.ErrorIs(t, err, domain.ErrInvalidColor)
}

func TestExpand_ForbidOpponentColor(t *testing.T) {
	rows := [][]domain.Color{
		{R, G, B},
		{G, B, C},
		{B, C, M},
	}
	_, st := startOn(t, rows)
	before := st.Board.Colors()

	_, err := runtime.Expand(st, domain.Player1, M, runtime.Rules{ForbidOpponentColor: true})
	require.ErrorIs(t, err, domain.ErrOpponentColor)
	assert.Equal(t, before, st.Board.Colors())
	assert.Equal(t, 1, st.Board.Count(domain.Player1))

	res, err := runtime.Expand(st, domain.Player1, M, runtime.Rules{})
	require.NoError(t, err)
	assert.Zero(t, res.CellsAdded, "no magenta cell touches the anchor")
}
