package ports

import (
	"context"

	"github.com/aretw0/filler/pkg/domain"
)

// StatelessGame is the engine surface used by host loops.
// The game keeps no state of its own; each call receives the State it acts on.
type StatelessGame interface {
	// Start creates a new game on a freshly generated board.
	Start(ctx context.Context) (*domain.State, error)

	// Submit commits a color choice for a player.
	Submit(ctx context.Context, st *domain.State, p domain.Player, c domain.Color) (domain.ExpansionResult, error)

	// Snapshot returns the presentation view of the state.
	Snapshot(st *domain.State) domain.Snapshot
}
