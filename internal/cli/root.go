// Package cli implements the command-line interface for gocube3d.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube3d/internal/config"
)

const version = "0.2.0"

var (
	// Global flags
	configPath string
	verbose    bool

	// Loaded in PersistentPreRunE
	cfg    = config.Default()
	logger = slog.New(slog.DiscardHandler)
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube3d",
	Short: "3D Rubik's Cube explorer",
	Long: `gocube3d - An interactive 3D Rubik's Cube.

Open a window and turn faces with the button panel or the keyboard, play
the cube in the terminal, render a frame to PNG, or print the sticker net
after a sequence of moves.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (default: built-in settings)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig reads --config and sets up the logger. Flags given on the
// command line take precedence over file values.
func loadConfig(cmd *cobra.Command) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	logger = cfg.Log.NewLogger(cmd.ErrOrStderr(), verbose)
	slog.SetDefault(logger)

	logger.Debug("config loaded", "path", configPath, "permute", cfg.Cube.Permute, "easing", cfg.Cube.Easing)
	return nil
}
