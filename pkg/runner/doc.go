/*
Package runner implements the game loop and I/O orchestration for Filler.

It acts as the bridge between the turn controller and the players. The runner
renders a snapshot after every committed move, collects the next color choice
through a pluggable handler, and reports rejected choices without touching
the board.

# Key Components

  - Runner: The loop. It stops at game over, on exit/quit, at end of input or on SIGINT/SIGTERM.
  - IOHandler: Decouples how choices are read and boards are shown.
  - TextHandler: Line-oriented interactive play.
  - JSONHandler: JSON lines for scripted clients.
  - SourceHandler: Adapts a ports.ChoiceSource such as a switch bank.

# Usage

	game, _ := filler.New(filler.WithSeed(42))
	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	state, err := r.Run(ctx, game)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(game.Outcome(state))
*/
package runner
