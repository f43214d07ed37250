package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/filler/pkg/domain"
)

// LogHooks returns lifecycle hooks that audit every event at debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGameStart: func(ctx context.Context, e *domain.GameEvent) {
			logger.DebugContext(ctx, "Game Start", "game_id", e.GameID)
		},
		OnExpand: func(ctx context.Context, e *domain.MoveEvent) {
			logger.DebugContext(ctx, "Expand",
				"game_id", e.GameID,
				"turn", e.Turn,
				"player", e.Result.Player,
				"from", e.Result.Previous,
				"to", e.Result.Color,
				"cells_added", e.Result.CellsAdded,
			)
		},
		OnNoOp: func(ctx context.Context, e *domain.MoveEvent) {
			logger.DebugContext(ctx, "No-op", "game_id", e.GameID, "player", e.Result.Player, "color", e.Result.Color)
		},
		OnReject: func(ctx context.Context, e *domain.MoveEvent) {
			logger.DebugContext(ctx, "Reject", "game_id", e.GameID, "player", e.Result.Player, "color", e.Result.Color, "err", e.Err)
		},
		OnTurn: func(ctx context.Context, e *domain.TurnEvent) {
			logger.DebugContext(ctx, "Turn", "game_id", e.GameID, "from", e.From, "to", e.To)
		},
		OnGameOver: func(ctx context.Context, e *domain.GameEvent) {
			logger.DebugContext(ctx, "Game Over",
				"game_id", e.GameID,
				"player1", e.Outcome.Player1Score,
				"player2", e.Outcome.Player2Score,
				"result", GameResult(e.Outcome),
			)
		},
	}
}
