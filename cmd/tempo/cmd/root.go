// Package cmd implements the tempo CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tempo",
	Short: "tempo - an animation timing engine",
	Long: `tempo drives time-based animations: it computes a progress fraction
within a repeating cycle on every tick and dispatches lifecycle
notifications to observers.

The CLI runs animations described in a YAML scenario file and prints
their lifecycle events, which is useful for exploring envelope settings
(repeat count, repeat behavior, end behavior) before wiring them into an
application.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tempo %s (built %s)\n", Version, BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
