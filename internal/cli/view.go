package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube3d"
	"github.com/SeamusWaldron/gocube3d/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the 3D cube window",
	Long: `Open a window showing the cube in 3D.

Mouse:
  click a button    - Turn that face (F F' B B' U U' D D' L L' R R')
  drag elsewhere    - Orbit the camera

Keyboard:
  f b u d l r       - Turn a face clockwise
  Shift+letter      - Turn a face counter-clockwise
  Space             - Play the algorithm given by --alg (default: sexy)
  Backspace         - Reset to solved
  Esc               - Quit`,
	RunE: runView,
}

var (
	viewFlags   cubeFlags
	viewOutline bool
)

func init() {
	rootCmd.AddCommand(viewCmd)
	viewFlags.register(viewCmd)
	viewCmd.Flags().BoolVar(&viewOutline, "outline", true, "Draw sticker outlines")
}

func runView(cmd *cobra.Command, args []string) error {
	viewFlags.resolve(cmd, cfg)
	if cmd.Flags().Changed("outline") {
		cfg.Cube.Outline = viewOutline
	}

	opts, err := viewFlags.options()
	if err != nil {
		return err
	}
	c, err := gocube.NewCube(opts...)
	if err != nil {
		return fmt.Errorf("failed to create cube: %w", err)
	}

	moves, err := gocube.ParseMoves(viewFlags.moves)
	if err != nil {
		return fmt.Errorf("--moves: %w", err)
	}
	gameOpts := []viewer.Option{
		viewer.WithLogger(logger),
		viewer.WithMoves(moves),
	}
	if viewFlags.alg != "" {
		alg, ok := gocube.Algorithm(viewFlags.alg)
		if !ok {
			return fmt.Errorf("unknown algorithm %q", viewFlags.alg)
		}
		gameOpts = append(gameOpts, viewer.WithAlgorithm(alg))
	}

	return viewer.New(c, cfg, gameOpts...).Run()
}
