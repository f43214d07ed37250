// Package config loads the game configuration from YAML or JSON files and
// from key=value overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/filler/internal/logging"
	"github.com/aretw0/filler/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. A missing default file
// is not an error.
const DefaultPath = "filler.yaml"

// Presentation modes.
const (
	ModeText   = "text"
	ModeJSON   = "json"
	ModeScreen = "screen"
)

// Config is the complete game configuration.
type Config struct {
	// Seed fixes the board. Zero seeds from the clock.
	Seed                int64  `yaml:"seed" json:"seed" mapstructure:"seed"`
	Scoring             string `yaml:"scoring" json:"scoring" mapstructure:"scoring"`
	StartingPlayer      int    `yaml:"starting_player" json:"starting_player" mapstructure:"starting_player"`
	ForbidOpponentColor bool   `yaml:"forbid_opponent_color" json:"forbid_opponent_color" mapstructure:"forbid_opponent_color"`
	LogLevel            string `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
	LogFormat           string `yaml:"log_format" json:"log_format" mapstructure:"log_format"`
	Mode                string `yaml:"mode" json:"mode" mapstructure:"mode"`
	// MetricsAddr serves Prometheus metrics when set (e.g. ":9090").
	MetricsAddr string `yaml:"metrics_addr" json:"metrics_addr" mapstructure:"metrics_addr"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Scoring:        string(domain.ScoreCells),
		StartingPlayer: int(domain.Player1),
		LogLevel:       "info",
		LogFormat:      string(logging.FormatText),
		Mode:           ModeText,
	}
}

// Load reads path on top of Default. Files ending in .json are parsed as
// JSON, anything else as YAML. A missing DefaultPath yields the defaults;
// any other missing file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ApplyOverrides decodes key=value pairs (as given to --set) into c.
// Values are converted to the field type, so "seed=42" and
// "forbid_opponent_color=true" work as expected.
func (c *Config) ApplyOverrides(pairs []string) error {
	if len(pairs) == 0 {
		return nil
	}
	raw := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("invalid override %q, want key=value", pair)
		}
		raw[key] = strings.TrimSpace(value)
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           c,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid override: %w", err)
	}
	if len(md.Unused) > 0 {
		return fmt.Errorf("unknown config key(s): %s", strings.Join(md.Unused, ", "))
	}
	return c.Validate()
}

// Validate checks every enumerated field.
func (c Config) Validate() error {
	var errs []error
	if _, err := domain.ParseScoringPolicy(c.Scoring); err != nil {
		errs = append(errs, err)
	}
	if _, err := domain.ParsePlayer(c.StartingPlayer); err != nil {
		errs = append(errs, fmt.Errorf("starting_player: %w", err))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch logging.Format(c.LogFormat) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	switch c.Mode {
	case ModeText, ModeJSON, ModeScreen:
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	return errors.Join(errs...)
}
