package domain

import "fmt"

// Player identifies a side. NoPlayer doubles as the "unowned" owner value.
type Player uint8

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Players lists the two sides in turn order.
var Players = [2]Player{Player1, Player2}

// Valid reports whether p is one of the two sides.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other side. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

func (p Player) String() string {
	switch p {
	case NoPlayer:
		return "none"
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return fmt.Sprintf("player(%d)", uint8(p))
	}
}

// Label is the human readable name used in reports.
func (p Player) Label() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Nobody"
	}
}

// ParsePlayer converts 1 or 2 into a Player.
func ParsePlayer(v int) (Player, error) {
	if v != int(Player1) && v != int(Player2) {
		return NoPlayer, fmt.Errorf("invalid player %d", v)
	}
	return Player(v), nil
}
