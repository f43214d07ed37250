package main

import (
	"fmt"

	"github.com/aretw0/filler/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagKeys maps play flags to config keys; a changed flag becomes an override.
var flagKeys = map[string]string{
	"seed":         "seed",
	"scoring":      "scoring",
	"first":        "starting_player",
	"forbid":       "forbid_opponent_color",
	"mode":         "mode",
	"metrics-addr": "metrics_addr",
	"log-level":    "log_level",
	"log-format":   "log_format",
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long:  `Starts a two-player game. Choose colors with 0-5, their names or initials; type quit to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		quiet, _ := cmd.Flags().GetBool("quiet")
		sets, _ := cmd.Flags().GetStringArray("set")

		overrides := append([]string{}, sets...)
		cmd.Flags().Visit(func(f *pflag.Flag) {
			if key, ok := flagKeys[f.Name]; ok {
				overrides = append(overrides, fmt.Sprintf("%s=%s", key, f.Value.String()))
			}
		})

		return cli.Execute(cmd.Context(), cli.RunOptions{
			ConfigPath: configPath,
			Overrides:  overrides,
			Debug:      debug,
			Quiet:      quiet,
			Stdin:      cmd.InOrStdin(),
			Stdout:     cmd.OutOrStdout(),
			Stderr:     cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Int64("seed", 0, "Board seed (0 = time based)")
	playCmd.Flags().String("scoring", "cells", "Live scoring shown during play: cells or region")
	playCmd.Flags().Int("first", 1, "Starting player (1 or 2)")
	playCmd.Flags().Bool("forbid", false, "Forbid choosing the opponent's current color")
	playCmd.Flags().String("mode", "text", "Presentation: text, json or screen")
	playCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address")
	playCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	playCmd.Flags().String("log-format", "text", "Log format: text or json")
	playCmd.Flags().StringArray("set", nil, "Override a config key (key=value), repeatable")
	playCmd.Flags().BoolP("quiet", "q", false, "No banner and no summary")

	// 'play' is the default command
	rootCmd.RunE = playCmd.RunE
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}
