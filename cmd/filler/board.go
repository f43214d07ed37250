package main

import (
	"github.com/aretw0/filler/internal/cli"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the opening board for a seed",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetInt64("seed")
		format, _ := cmd.Flags().GetString("format")
		if !cmd.Flags().Changed("format") && cli.IsTerminal(cmd.OutOrStdout()) {
			format = "color"
		}
		return cli.PrintBoard(cmd.Context(), cmd.OutOrStdout(), cli.BoardOptions{Seed: seed, Format: format})
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)

	boardCmd.Flags().Int64("seed", 0, "Board seed (0 = time based)")
	boardCmd.Flags().String("format", "text", "Output format: text, color or json")
}
