package observability

import (
	"context"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Move outcomes used as the "outcome" label of filler_moves_total.
const (
	OutcomeExpand = "expand"
	OutcomeNoOp   = "no_op"
	OutcomeReject = "reject"
)

// Metrics holds the Prometheus collectors for game activity.
type Metrics struct {
	Moves        *prometheus.CounterVec
	CellsClaimed *prometheus.CounterVec
	Games        *prometheus.CounterVec
	CellsPerMove prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filler_moves_total",
				Help: "Submitted color choices by player and outcome",
			},
			[]string{"player", "outcome"},
		),
		CellsClaimed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filler_cells_claimed_total",
				Help: "Cells whose owner changed, by claiming player",
			},
			[]string{"player"},
		),
		Games: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filler_games_total",
				Help: "Finished games by result",
			},
			[]string{"result"},
		),
		CellsPerMove: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "filler_cells_per_move",
			Help:    "Cells added by each committed move",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Moves, m.CellsClaimed, m.Games, m.CellsPerMove)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnExpand: func(ctx context.Context, e *domain.MoveEvent) {
			player := e.Result.Player.String()
			m.Moves.WithLabelValues(player, OutcomeExpand).Inc()
			m.CellsClaimed.WithLabelValues(player).Add(float64(e.Result.CellsAdded))
			m.CellsPerMove.Observe(float64(e.Result.CellsAdded))
		},
		OnNoOp: func(ctx context.Context, e *domain.MoveEvent) {
			m.Moves.WithLabelValues(e.Result.Player.String(), OutcomeNoOp).Inc()
		},
		OnReject: func(ctx context.Context, e *domain.MoveEvent) {
			m.Moves.WithLabelValues(e.Result.Player.String(), OutcomeReject).Inc()
		},
		OnGameOver: func(ctx context.Context, e *domain.GameEvent) {
			m.Games.WithLabelValues(GameResult(e.Outcome)).Inc()
		},
	}
}

// GameResult labels a finished game: "player1", "player2" or "tie".
func GameResult(o domain.Outcome) string {
	if o.Tie {
		return "tie"
	}
	return o.Winner.String()
}
