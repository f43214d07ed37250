package screen

import (
	"context"
	"testing"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimHandler(t *testing.T) (*Handler, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(40, 20)
	h := New(s)
	t.Cleanup(h.Close)
	return h, s
}

func fixtureSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Size:    2,
		Colors:  [][]domain.Color{{domain.Red, domain.Green}, {domain.Blue, domain.Red}},
		Owners:  [][]domain.Player{{domain.Player1, domain.NoPlayer}, {domain.NoPlayer, domain.Player2}},
		Active:  domain.Player1,
		Anchors: [2]domain.Color{domain.Red, domain.Red},
		Outcome: domain.Outcome{Player1Score: 1, Player2Score: 1},
	}
}

func readLine(s tcell.Screen, x, y, n int) string {
	runes := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		mainc, _, _, _ := s.GetContent(x+i, y)
		runes = append(runes, mainc)
	}
	return string(runes)
}

func TestHandler_OutputDrawsBoard(t *testing.T) {
	h, s := newSimHandler(t)
	require.NoError(t, h.Output(context.Background(), fixtureSnapshot()))

	mainc, _, style, _ := s.GetContent(originX+1, originY)
	assert.Equal(t, '1', mainc)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.GetColor(domain.Red.Hex()), bg)

	mainc, _, style, _ = s.GetContent(originX+cellWidth+1, originY+1)
	assert.Equal(t, '2', mainc)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.GetColor(domain.Red.Hex()), bg)

	_, _, style, _ = s.GetContent(originX+cellWidth, originY)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.GetColor(domain.Green.Hex()), bg)

	score := "Player 1: 1  Player 2: 1"
	assert.Equal(t, score, readLine(s, originX, originY+3, len(score)))
	turn := "Player 1 to move"
	assert.Equal(t, turn, readLine(s, originX, originY+4, len(turn)))
}

func TestHandler_SystemOutput(t *testing.T) {
	h, s := newSimHandler(t)
	require.NoError(t, h.Output(context.Background(), fixtureSnapshot()))
	require.NoError(t, h.SystemOutput(context.Background(), "Pick another color."))

	msg := "Pick another color."
	assert.Equal(t, msg, readLine(s, originX, originY+7, len(msg)))

	// a new board clears the status line
	require.NoError(t, h.Output(context.Background(), fixtureSnapshot()))
	assert.NotEqual(t, msg, readLine(s, originX, originY+7, len(msg)))
}

func TestHandler_InputCancelled(t *testing.T) {
	h, _ := newSimHandler(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Input(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, h.WaitKey(ctx), context.Canceled)
}

func TestChoiceForKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want string
		ok   bool
	}{
		{"digit", tcell.KeyRune, '3', "3", true},
		{"last digit", tcell.KeyRune, '5', "5", true},
		{"digit out of palette", tcell.KeyRune, '6', "", false},
		{"initial", tcell.KeyRune, 'm', "magenta", true},
		{"upper initial", tcell.KeyRune, 'Y', "yellow", true},
		{"quit rune", tcell.KeyRune, 'q', "quit", true},
		{"escape", tcell.KeyEscape, 0, "quit", true},
		{"ctrl c", tcell.KeyCtrlC, 0, "quit", true},
		{"unknown rune", tcell.KeyRune, 'x', "", false},
		{"arrow", tcell.KeyUp, 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ChoiceForKey(tt.key, tt.r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
