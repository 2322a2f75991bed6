/*
PURPOSE:
  Defines the 'dataset-info' subcommand.
  Shows the inferred column types and row count of a CSV dataset.

REQUIREMENTS:
  User-specified:
  - Inspect a dataset the way the experiment setup will see it.

  Implementation-discovered:
  - Kind inference without overrides matches the evaluation default.

ARCHITECTURE INTEGRATION:
  - Calls: internal/dataset.Load()
  - Uses: internal/output.RenderDatasetInfo()

ERROR HANDLING:
  - Returns error if the file is missing, empty or holds unparsable cells.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  sdexp dataset-info data/original/D1.csv

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/dataset/dataset.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/dataset"
	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/output"
)

var datasetInfoCmd = &cobra.Command{
	Use:   "dataset-info <csv-file>",
	Short: "Show inferred column types of a CSV dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.Load(args[0], nil)
		if err != nil {
			return err
		}

		output.RenderDatasetInfo(os.Stdout, args[0], ds)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetInfoCmd)
}
