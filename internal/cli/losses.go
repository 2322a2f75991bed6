/*
PURPOSE:
  Defines the 'losses' subcommand.
  Extracts per-dataset GAN loss tables from a captured training stdout file.

REQUIREMENTS:
  User-specified:
  - Parse the capture and show a per-dataset summary table.
  - Optionally dump the full epoch tables.
  - Optionally export CSV tables and a JSONL summary file.

  Implementation-discovered:
  - All pipeline logic belongs to internal/engine; this file only maps
    flags to options.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.ExtractLosses()

ERROR HANDLING:
  - Returns error if the capture cannot be read or parsed, or export fails.
  - A capture with zero loss blocks is not an error.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Flags -> ExtractOptions -> engine.ExtractLosses.

USAGE:
  sdexp losses run.log -o results --dump

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/runner.go

MAINTENANCE:
  - Update when adding new export formats.
*/

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/engine"
)

var (
	lossOutputDir string
	lossDump      bool
)

var lossesCmd = &cobra.Command{
	Use:   "losses <captured-stdout-file>",
	Short: "Extract GAN loss tables from captured training output",
	Long: `Parses a file holding captured training stdout and extracts the generator
and discriminator loss per epoch for every dataset found in it.

Loss blocks are delimited by #START# and #END# markers. The first line of a
block names the dataset; every line starting with 'Epoch' contributes one row.
Lines between epoch lines (progress bars, warnings) are ignored.

A summary table is always printed. Use --dump for the full per-epoch tables
and --output-dir to export one CSV per dataset plus a JSONL summary file.`,
	Example: `  # Summarize a capture
  sdexp losses run.log

  # Show every epoch row as well
  sdexp losses run.log --dump

  # Export CSV tables and summaries to ./results
  sdexp losses run.log -o results`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return engine.ExtractLosses(engine.ExtractOptions{
			CapturePath: args[0],
			OutputDir:   lossOutputDir,
			Dump:        lossDump,
			Out:         os.Stdout,
		})
	},
}

func init() {
	rootCmd.AddCommand(lossesCmd)

	lossesCmd.Flags().StringVarP(&lossOutputDir, "output-dir", "o", "", "Directory for CSV tables and the JSONL summary file")
	lossesCmd.Flags().BoolVar(&lossDump, "dump", false, "Print the full per-epoch table for every dataset")
}
