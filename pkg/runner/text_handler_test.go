package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureSnapshot() domain.Snapshot {
	return domain.Snapshot{
		GameID:  "g",
		Size:    2,
		Colors:  [][]domain.Color{{domain.Red, domain.Green}, {domain.Blue, domain.Red}},
		Owners:  [][]domain.Player{{domain.Player1, domain.NoPlayer}, {domain.NoPlayer, domain.Player2}},
		Active:  domain.Player1,
		Phase:   domain.PhaseAwaitingChoice,
		Anchors: [2]domain.Color{domain.Red, domain.Red},
		Outcome: domain.Outcome{Player1Score: 1, Player2Score: 1},
	}
}

func TestPlainBoard(t *testing.T) {
	got, err := PlainBoard(fixtureSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "0 1   1 .\n2 0   . 2\n", got)
}

func TestScoreLine(t *testing.T) {
	snap := fixtureSnapshot()
	assert.Equal(t, "Player 1 score: 1, Player 2 score: 1", ScoreLine(snap))

	snap.Progress = &[2]int{3, 5}
	assert.Equal(t, "Player 1 score: 1, Player 2 score: 1 (regions 3/5)", ScoreLine(snap))
}

func TestTextHandler_Output(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf, WithTextHandlerRenderer(func(s domain.Snapshot) (string, error) {
		return "Rendered: " + s.GameID, nil
	}))

	require.NoError(t, handler.Output(context.Background(), fixtureSnapshot()))

	output := outBuf.String()
	if !strings.Contains(output, "Rendered: g") {
		t.Errorf("Expected output to contain rendered board, got '%s'", output)
	}
	assert.Contains(t, output, "Player 1 score: 1, Player 2 score: 1")
}

func TestTextHandler_OutputRendererFallback(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf, WithTextHandlerRenderer(func(domain.Snapshot) (string, error) {
		return "", errors.New("no colors")
	}))

	require.NoError(t, handler.Output(context.Background(), fixtureSnapshot()))
	assert.Contains(t, outBuf.String(), "0 1   1 .")
}

func TestTextHandler_Input(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("\n  Blue \x1b\n"), outBuf)
	require.NoError(t, handler.Output(context.Background(), fixtureSnapshot()))

	val, err := handler.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Blue", val)
	assert.Contains(t, outBuf.String(), "Player 1 (red) > ")

	_, err = handler.Input(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestTextHandler_InputCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	handler := NewTextHandler(pr, &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := handler.Input(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTextHandler_SystemOutput(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf)
	require.NoError(t, handler.SystemOutput(context.Background(), "Player 2 wins!"))
	assert.Equal(t, "Player 2 wins!\n", outBuf.String())
}
