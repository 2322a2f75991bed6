/*
PURPOSE:
  Defines the 'models' subcommand.
  Lists the configured classifiers with their report display names.

REQUIREMENTS:
  User-specified:
  - Show which classifiers an evaluation run will train.

  Implementation-discovered:
  - Short names outside the known set are shown as-is with a warning,
    since the config accepts free-form entries.

ARCHITECTURE INTEGRATION:
  - Calls: internal/report.ModelFullName()
  - Uses: internal/config for the classifier list

ERROR HANDLING:
  - Returns error only if the config fails to load.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  sdexp models

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/report/report.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/config"
	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/output"
	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/report"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List configured classifiers and their display names",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		for _, short := range cfg.Models {
			name, ok := report.ModelFullName(short)
			if !ok {
				output.Logger.Warn("Unknown classifier short name", "model", short)
				name = short
			}
			fmt.Printf("%-10s %s\n", short, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
