/*
PURPOSE:
  Defines the root Cobra command for the sdexp CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config and --verbose.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Verbosity must be applied before any subcommand logs.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/sdexp/main.go
  - Calls: Child commands (losses, synthetic-files, artifacts, dataset-info,
    models, init)
  - Modifies: Global log level via internal/output.

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands, Root is usually empty or helps.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/sdexp/main.go

MAINTENANCE:
  - Update when adding new global configuration options.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "sdexp",
		Short: "Helper tool for synthetic-data experiment runs",
		Long: `Utilities around synthetic-data experiment runs: extract GAN loss tables
from captured training output, list synthetic files for a dataset, inspect
saved experiment artifacts and CSV datasets. Use 'losses --help' for the
loss extraction options.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./experiment_config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
