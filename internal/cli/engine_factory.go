package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/filler"
	"github.com/aretw0/filler/internal/config"
	"github.com/aretw0/filler/pkg/domain"
)

// createGame initializes a Game from the resolved configuration.
func createGame(cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*filler.Game, error) {
	starting, err := domain.ParsePlayer(cfg.StartingPlayer)
	if err != nil {
		return nil, err
	}

	game, err := filler.New(
		filler.WithLogger(logger),
		filler.WithLifecycleHooks(hooks),
		filler.WithSeed(cfg.Seed),
		filler.WithScoring(cfg.Scoring),
		filler.WithStartingPlayer(starting),
		filler.WithForbidOpponentColor(cfg.ForbidOpponentColor),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing game: %w", err)
	}
	return game, nil
}

// ResolveConfig loads path (or the default file) and applies key=value
// overrides on top. Flag values are passed here as overrides too, so they
// always win over the file.
func ResolveConfig(path string, overrides []string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyOverrides(overrides); err != nil {
		return cfg, err
	}
	return cfg, nil
}
