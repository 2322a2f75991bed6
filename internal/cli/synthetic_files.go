/*
PURPOSE:
  Defines the 'synthetic-files' subcommand.
  Lists the synthetic CSV files generated for one original dataset.

REQUIREMENTS:
  User-specified:
  - List synthetic files for a given original data id.

  Implementation-discovered:
  - Useful validation step before an evaluation run.

ARCHITECTURE INTEGRATION:
  - Calls: internal/files.SyntheticDataFiles()
  - Uses: internal/config for the synthetic-data directory

ERROR HANDLING:
  - Returns error if the id is malformed or the directory is unreadable.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  sdexp synthetic-files D3

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/files/files.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/config"
	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/files"
	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/output"
)

var syntheticFilesCmd = &cobra.Command{
	Use:   "synthetic-files <original-data-id>",
	Short: "List synthetic files generated for an original dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		paths, err := files.SyntheticDataFiles(cfg.Folders.SyntheticDir, args[0])
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			output.Logger.Info("No synthetic files found", "id", args[0], "dir", cfg.Folders.SyntheticDir)
			return nil
		}

		for _, p := range paths {
			fmt.Println(p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syntheticFilesCmd)
}
