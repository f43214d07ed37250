/*
Package domain contains the core data model of the Filler game.

It defines the board, its colors and owners, the players and the game state.
This package is kept pure and free of external dependencies like I/O,
following the Hexagonal Architecture split used across the module.

# Key Entities

  - Board: the color grid and the parallel ownership grid, with bounds-checked queries.
  - Color: one of six palette entries, addressable by index 0..5.
  - Player: Player1 (anchored top-left) or Player2 (anchored bottom-right).
  - State: the mutable game instance (board, active player, phase, history).
  - Snapshot: the read-only view handed to presentation adapters.
*/
package domain
