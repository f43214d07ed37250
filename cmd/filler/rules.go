package main

import (
	"github.com/aretw0/filler/internal/cli"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Explain how to play",
	RunE: func(cmd *cobra.Command, args []string) error {
		if diagram, _ := cmd.Flags().GetBool("diagram"); diagram {
			return cli.PrintPhaseDiagram(cmd.OutOrStdout())
		}
		return cli.PrintRules(cmd.OutOrStdout(), cli.IsTerminal(cmd.OutOrStdout()))
	},
}

func init() {
	rulesCmd.Flags().Bool("diagram", false, "Print the turn phases as a Mermaid flowchart")
	rootCmd.AddCommand(rulesCmd)
}
