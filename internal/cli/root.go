// Package cli provides the command-line interface of the simulator.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "warehouse-simulator",
	Short: "Fixed-capacity warehouse inventory simulator.",
	Long: `Warehouse inventory simulator with fixed storage: ten sectors, ` +
		`each a bounded min-heap of at most five products ordered by demand. ` +
		`Run "serve" to start the HTTP service or "seed" to drive a running ` +
		`instance with generated traffic.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
