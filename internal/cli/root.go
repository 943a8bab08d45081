// Package cli wires the verification layer into a command-line tool.
// Everything here is glue; the behavior lives in internal packages.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kremis",
	Short: "Honest verification layer over the Kremis Core",
	Long:  "Verifies hypotheses against the Kremis graph Core and reports results as FACTS / INFERENCES / UNKNOWN, never asserting a claim the Core did not confirm.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
