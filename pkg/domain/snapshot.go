package domain

import "fmt"

// ExpansionResult describes what a committed choice changed.
type ExpansionResult struct {
	Player   Player `json:"player"`
	Color    Color  `json:"color"`
	Previous Color  `json:"previous"`

	// Claimed lists every recolored cell in row-major order.
	Claimed []Pos `json:"claimed,omitempty"`

	// CellsAdded counts cells whose owner changed to Player.
	CellsAdded int `json:"cells_added"`

	// NoOp marks a choice equal to the anchor color: nothing was mutated and
	// the turn did not advance.
	NoOp bool `json:"no_op,omitempty"`
}

// Outcome is the score line and, once the game ended, its verdict.
type Outcome struct {
	Player1Score int  `json:"player1_score"`
	Player2Score int  `json:"player2_score"`
	GameOver     bool `json:"game_over"`

	// Winner is NoPlayer while the game runs and on a tie.
	Winner Player `json:"winner"`
	Tie    bool   `json:"tie,omitempty"`
}

// Score returns the score of p.
func (o Outcome) Score(p Player) int {
	switch p {
	case Player1:
		return o.Player1Score
	case Player2:
		return o.Player2Score
	default:
		return 0
	}
}

func (o Outcome) String() string {
	switch {
	case !o.GameOver:
		return fmt.Sprintf("Player 1 score: %d, Player 2 score: %d", o.Player1Score, o.Player2Score)
	case o.Tie:
		return "It's a tie!"
	default:
		return fmt.Sprintf("%s wins!", o.Winner.Label())
	}
}

// Snapshot is the read-only view handed to presentation adapters after every commit.
type Snapshot struct {
	GameID string     `json:"game_id"`
	Size   int        `json:"size"`
	Colors [][]Color  `json:"colors"`
	Owners [][]Player `json:"owners"`
	Active Player     `json:"active"`
	Phase  Phase      `json:"phase"`
	Turn   int        `json:"turn"`

	// Anchors holds the current anchor color of each player, Player1 first.
	Anchors [2]Color `json:"anchors"`

	// Progress is the live region-size metric when that scoring policy is on.
	Progress *[2]int `json:"progress,omitempty"`

	Outcome
}
