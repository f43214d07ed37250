/*
Package filler is the core of a two-player territory-capture board game played on an 8×8 grid of six colors.

Each player owns a region anchored at a home corner: Player 1 at the top-left, Player 2 at the bottom-right.
On their turn a player picks a color; their region is repainted with it and absorbs every connected cell
that already had that color. The game ends when every cell has an owner, and the player owning more cells wins.

# Concept

The library separates the game state (State) from the rules (Game) and from presentation. The host owns
the loop: it renders a Snapshot, collects a color choice from whatever device it has, and submits it.
The runner package provides ready-made loops for text, JSON-lines and full-screen terminals.

# Key Features

  - Deterministic boards: the same seed always generates the same board.
  - Atomic moves: every check runs before the board is touched; a rejected choice changes nothing.
  - Distinct no-op: choosing your own color reports NoOp instead of an error and keeps your turn.
  - Observability: lifecycle hooks for logging and Prometheus metrics.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/filler"
	)

	func main() {
		game, err := filler.New(filler.WithSeed(42))
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		state, err := game.Start(ctx)
		if err != nil {
			log.Fatal(err)
		}

		for !game.IsTerminal(state) {
			choice := nextChoice(game.Snapshot(state)) // host-provided
			if _, err := game.SubmitIndex(ctx, state, choice); err != nil {
				log.Printf("rejected: %v", err)
			}
		}
		fmt.Println(game.Outcome(state))
	}
*/
package filler
