package runtime

import (
	"github.com/aretw0/filler/pkg/domain"
	"github.com/aretw0/filler/pkg/region"
)

// Outcome computes the score line. Scores are owned cell counts; the winner
// needs a strict majority once the game is over.
func (e *Engine) Outcome(st *domain.State) domain.Outcome {
	o := domain.Outcome{
		Player1Score: st.Board.Count(domain.Player1),
		Player2Score: st.Board.Count(domain.Player2),
		GameOver:     st.Over(),
	}
	if !o.GameOver {
		return o
	}
	switch {
	case o.Player1Score > o.Player2Score:
		o.Winner = domain.Player1
	case o.Player2Score > o.Player1Score:
		o.Winner = domain.Player2
	default:
		o.Tie = true
	}
	return o
}

// Progress returns the connected region size of each player, Player1 first.
func Progress(st *domain.State) [2]int {
	return [2]int{
		region.Size(st.Board, domain.Player1),
		region.Size(st.Board, domain.Player2),
	}
}

// Snapshot builds the presentation view of st.
func (e *Engine) Snapshot(st *domain.State) domain.Snapshot {
	b := st.Board
	snap := domain.Snapshot{
		GameID:  st.ID,
		Size:    b.Size(),
		Colors:  b.Colors(),
		Owners:  b.Owners(),
		Active:  st.Active,
		Phase:   st.Phase,
		Turn:    st.Turn,
		Outcome: e.Outcome(st),
	}
	for i, p := range domain.Players {
		snap.Anchors[i], _ = b.ColorAt(b.Anchor(p))
	}
	if e.scoring == domain.ScoreRegion {
		progress := Progress(st)
		snap.Progress = &progress
	}
	return snap
}

// Scoring returns the configured live scoring policy.
func (e *Engine) Scoring() domain.ScoringPolicy {
	return e.scoring
}
