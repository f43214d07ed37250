package runner

import (
	"context"

	"github.com/aretw0/filler/pkg/domain"
)

// IOHandler defines the interface for interacting with the players.
// This allows switching between Text (interactive), JSON lines (automated)
// and full-screen terminal modes.
type IOHandler interface {
	// Output presents the current board, ownership and scores.
	Output(ctx context.Context, snap domain.Snapshot) error

	// Input blocks until the active player submits a raw choice.
	Input(ctx context.Context) (string, error)

	// SystemOutput reports out-of-band messages: rejected choices, no-ops
	// and the final verdict.
	SystemOutput(ctx context.Context, msg string) error
}

// BoardRenderer turns a snapshot into displayable text.
type BoardRenderer func(domain.Snapshot) (string, error)
