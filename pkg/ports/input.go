package ports

import (
	"context"

	"github.com/aretw0/filler/pkg/domain"
)

// ChoiceSource yields committed color choices, one per call.
// Implementations block until a choice is made or ctx is done.
type ChoiceSource interface {
	NextColorChoice(ctx context.Context) (domain.Color, error)
}

// ChoiceSourceFunc adapts a function to ChoiceSource.
type ChoiceSourceFunc func(ctx context.Context) (domain.Color, error)

// NextColorChoice calls f.
func (f ChoiceSourceFunc) NextColorChoice(ctx context.Context) (domain.Color, error) {
	return f(ctx)
}

// Presenter renders the state handed out after each committed move.
type Presenter interface {
	Present(ctx context.Context, snap domain.Snapshot) error
}
