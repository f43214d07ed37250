package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/filler"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of filler",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "filler version %s\n", strings.TrimSpace(filler.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
