package domain

import "errors"

// ErrOutOfBounds is returned when a position lies outside the board.
var ErrOutOfBounds = errors.New("position out of bounds")

// ErrInvalidColor is returned when a choice is not one of the palette colors.
var ErrInvalidColor = errors.New("invalid color")

// ErrNotActivePlayer is returned when a player moves out of turn.
var ErrNotActivePlayer = errors.New("not the active player")

// ErrGameOver is returned when a choice is submitted after the game ended.
var ErrGameOver = errors.New("game is over")

// ErrOpponentColor is returned when the opponent-color rule is enabled and the
// choice equals the opponent's current anchor color.
var ErrOpponentColor = errors.New("color held by opponent")

// ErrOwnershipConflict is returned when a claim would take a cell from the other player.
var ErrOwnershipConflict = errors.New("cell owned by other player")
