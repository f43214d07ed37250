package domain_test

import (
	"context"
	"testing"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnExpand: func(context.Context, *domain.MoveEvent) { calls = append(calls, "a.expand") },
		OnTurn:   func(context.Context, *domain.TurnEvent) { calls = append(calls, "a.turn") },
	}
	b := domain.LifecycleHooks{
		OnExpand:   func(context.Context, *domain.MoveEvent) { calls = append(calls, "b.expand") },
		OnGameOver: func(context.Context, *domain.GameEvent) { calls = append(calls, "b.over") },
	}

	m := a.Merge(b)
	ctx := context.Background()
	m.OnExpand(ctx, &domain.MoveEvent{})
	m.OnTurn(ctx, &domain.TurnEvent{})
	m.OnGameOver(ctx, &domain.GameEvent{})

	assert.Equal(t, []string{"a.expand", "b.expand", "a.turn", "b.over"}, calls)
	assert.Nil(t, m.OnNoOp)
	assert.Nil(t, m.OnGameStart)
}
