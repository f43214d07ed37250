package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventGameStart EventType = "game_start"
	EventExpand    EventType = "expand"
	EventNoOp      EventType = "no_op"
	EventReject    EventType = "reject"
	EventTurn      EventType = "turn"
	EventGameOver  EventType = "game_over"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	GameID    string    `json:"game_id"`
}

// MoveEvent reports a submitted choice and its effect.
type MoveEvent struct {
	EventBase
	Turn   int             `json:"turn"`
	Result ExpansionResult `json:"result"`
	Err    error           `json:"-"`
}

// TurnEvent reports a change of the active player.
type TurnEvent struct {
	EventBase
	From Player `json:"from"`
	To   Player `json:"to"`
}

// GameEvent reports the start or the end of a game.
type GameEvent struct {
	EventBase
	Outcome Outcome `json:"outcome"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnGameStart func(context.Context, *GameEvent)
	OnExpand    func(context.Context, *MoveEvent)
	OnNoOp      func(context.Context, *MoveEvent)
	OnReject    func(context.Context, *MoveEvent)
	OnTurn      func(context.Context, *TurnEvent)
	OnGameOver  func(context.Context, *GameEvent)
}

// Merge returns hooks that call h first and then other for every event.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnGameStart: chain(h.OnGameStart, other.OnGameStart),
		OnExpand:    chain(h.OnExpand, other.OnExpand),
		OnNoOp:      chain(h.OnNoOp, other.OnNoOp),
		OnReject:    chain(h.OnReject, other.OnReject),
		OnTurn:      chain(h.OnTurn, other.OnTurn),
		OnGameOver:  chain(h.OnGameOver, other.OnGameOver),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
