/*
PURPOSE:
  Defines the 'artifacts' subcommand.
  Lists saved experiment artifacts in a table.

REQUIREMENTS:
  User-specified:
  - Show name, dataset, method, parameter and metric counts, creation time.

  Implementation-discovered:
  - Directory defaults to the configured artifacts folder.

ARCHITECTURE INTEGRATION:
  - Calls: internal/artifact.LoadDir()
  - Uses: internal/output.RenderArtifacts()

ERROR HANDLING:
  - Returns error if the directory is missing or holds undecodable files.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  sdexp artifacts
  sdexp artifacts ./runs/2024-03-01

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/artifact/artifact.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/artifact"
	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/config"
	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/output"
)

var artifactsCmd = &cobra.Command{
	Use:   "artifacts [dir]",
	Short: "List saved experiment artifacts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		} else {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			dir = cfg.Folders.ArtifactsDir
		}

		arts, err := artifact.LoadDir(dir)
		if err != nil {
			return err
		}
		if len(arts) == 0 {
			output.Logger.Info("No artifacts found", "dir", dir)
			return nil
		}

		output.RenderArtifacts(os.Stdout, arts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(artifactsCmd)
}
