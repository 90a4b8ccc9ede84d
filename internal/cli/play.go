package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube3d"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the cube in the terminal",
	Long: `Start a terminal UI showing the unfolded cube.

Keyboard shortcuts:
  f b u d l r   - Turn a face clockwise
  F B U D L R   - Turn a face counter-clockwise
  space         - Play the algorithm given by --alg (default: sexy)
  backspace     - Reset to solved
  q/Esc         - Quit`,
	RunE: runPlay,
}

var (
	playFlags cubeFlags
	playPlain bool
)

func init() {
	rootCmd.AddCommand(playCmd)
	playFlags.register(playCmd)
	playCmd.Flags().BoolVar(&playPlain, "plain", false, "Draw the net without colors")
}

func runPlay(cmd *cobra.Command, args []string) error {
	playFlags.resolve(cmd, cfg)

	opts, err := playFlags.options()
	if err != nil {
		return err
	}
	c, err := gocube.NewCube(opts...)
	if err != nil {
		return fmt.Errorf("failed to create cube: %w", err)
	}

	moves, err := gocube.ParseMoves(playFlags.moves)
	if err != nil {
		return fmt.Errorf("--moves: %w", err)
	}
	alg := gocube.SexyMove
	if playFlags.alg != "" {
		named, ok := gocube.Algorithm(playFlags.alg)
		if !ok {
			return fmt.Errorf("unknown algorithm %q", playFlags.alg)
		}
		alg = named
	}

	model := newPlayModel(c, alg, playPlain)
	model.player.Enqueue(moves...)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}
