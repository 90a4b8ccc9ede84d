package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube3d/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings as TOML",
	Long: `Print the built-in settings, merged with --config when given, in the
format --config reads. Redirect the output to start a config file.

Examples:
  gocube3d config > cube.toml
  gocube3d --config cube.toml config`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	b, err := config.Encode(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}
