package domain

// Phase is the turn controller's current mode.
type Phase string

const (
	PhaseAwaitingChoice Phase = "awaiting_choice" // Waiting for the active player's color
	PhaseExpanding      Phase = "expanding"       // A choice is being committed
	PhaseScoringCheck   Phase = "scoring_check"   // Terminal detection after a commit
	PhaseGameOver       Phase = "game_over"       // Absorbing sink
)

// Move records one committed choice.
type Move struct {
	Turn       int    `json:"turn"`
	Player     Player `json:"player"`
	Color      Color  `json:"color"`
	CellsAdded int    `json:"cells_added"`
	NoOp       bool   `json:"no_op,omitempty"`
}

// State is the single mutable game instance.
type State struct {
	// ID identifies the game in logs and events.
	ID string

	// Seed is the value the board was generated from (0 for fixture boards).
	Seed int64

	Board *Board

	// Active is the player whose choice is awaited.
	Active Player

	Phase Phase

	// Turn counts committed, non no-op moves.
	Turn int

	// History tracks every submitted choice, no-ops included.
	History []Move
}

// NewState wraps a board into a fresh game awaiting the starting player.
func NewState(id string, board *Board, starting Player) *State {
	if !starting.Valid() {
		starting = Player1
	}
	return &State{
		ID:      id,
		Board:   board,
		Active:  starting,
		Phase:   PhaseAwaitingChoice,
		History: []Move{},
	}
}

// Over reports whether the game reached its sink phase.
func (s *State) Over() bool {
	return s.Phase == PhaseGameOver
}
