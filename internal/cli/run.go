package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/filler/internal/config"
	"github.com/aretw0/filler/internal/presentation/screen"
	"github.com/aretw0/filler/internal/presentation/tui"
	"github.com/aretw0/filler/pkg/domain"
	"github.com/aretw0/filler/pkg/observability"
	"github.com/aretw0/filler/pkg/runner"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
)

// RunOptions contains all the configuration for the play command.
type RunOptions struct {
	ConfigPath string
	// Overrides are key=value pairs applied after the config file,
	// from --set and from explicitly changed flags.
	Overrides []string
	Debug     bool
	Quiet     bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *RunOptions) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Execute plays one game with the configured presentation mode.
func Execute(ctx context.Context, opts RunOptions) error {
	opts.defaults()

	cfg, err := ResolveConfig(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}
	logger, err := createLogger(cfg, opts.Debug, opts.Stderr)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	var hooks domain.LifecycleHooks
	if opts.Debug {
		hooks = hooks.Merge(observability.LogHooks(logger))
	}
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		hooks = hooks.Merge(observability.NewMetrics(reg).Hooks())
		srv, err := observability.ListenMetrics(cfg.MetricsAddr, reg, logger)
		if err != nil {
			return fmt.Errorf("metrics server: %w", err)
		}
		go func() {
			if err := srv.Serve(sigCtx); err != nil {
				logger.Warn("metrics server stopped", "err", err)
			}
		}()
	}

	game, err := createGame(cfg, logger, hooks)
	if err != nil {
		return err
	}

	interactive := isTerminal(opts.Stdout)
	runnerOpts := []runner.Option{runner.WithLogger(logger)}

	var screenHandler *screen.Handler
	switch cfg.Mode {
	case config.ModeJSON:
		runnerOpts = append(runnerOpts, runner.WithInputHandler(runner.NewJSONHandler(opts.Stdin, opts.Stdout)))
	case config.ModeScreen:
		screenHandler, err = screen.Open()
		if err != nil {
			return fmt.Errorf("error opening screen: %w", err)
		}
		defer screenHandler.Close()
		runnerOpts = append(runnerOpts, runner.WithInputHandler(screenHandler))
	default:
		profile := termenv.Ascii
		if interactive {
			profile = termenv.ColorProfile()
			if !opts.Quiet {
				tui.PrintBanner(opts.Stdout, profile)
			}
		}
		board := tui.NewBoardRenderer(profile)
		runnerOpts = append(runnerOpts, runner.WithInputHandler(
			runner.NewTextHandler(opts.Stdin, opts.Stdout, runner.WithTextHandlerRenderer(board.Render)),
		))
	}

	r := runner.NewRunner(runnerOpts...)
	state, runErr := r.Run(sigCtx, game)

	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}
	if state == nil {
		return handleExecutionError(runErr)
	}

	outcome := game.Outcome(state)
	logger.Info("game finished",
		"game_id", state.ID,
		"seed", state.Seed,
		"turns", state.Turn,
		"player1", outcome.Player1Score,
		"player2", outcome.Player2Score,
		"over", outcome.GameOver,
	)

	switch cfg.Mode {
	case config.ModeScreen:
		if outcome.GameOver && runErr == nil {
			_ = screenHandler.WaitKey(sigCtx)
		}
	case config.ModeText:
		if !opts.Quiet {
			printSummary(opts.Stdout, outcome, state.History, interactive)
		}
		if sig := sigCtx.Signal(); sig != nil {
			printSystemMessage(opts.Stdout, "Interrupted (%v) at turn %d.", sig, state.Turn)
		}
	}

	return handleExecutionError(runErr)
}

// printSummary writes the end-of-game summary, styled when w is a terminal.
func printSummary(w io.Writer, outcome domain.Outcome, history []domain.Move, styled bool) {
	md := tui.SummaryMarkdown(outcome, history)
	style := "notty"
	if styled {
		style = ""
	}
	render, err := tui.NewRenderer(style)
	if err == nil {
		if out, err := render(md); err == nil {
			md = out
		}
	}
	fmt.Fprintln(w, md)
}
