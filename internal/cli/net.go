package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube3d"
	"github.com/SeamusWaldron/gocube3d/internal/notation"
)

var netCmd = &cobra.Command{
	Use:   "net",
	Short: "Print the sticker net after a sequence of moves",
	Long: `Play moves instantly and print the unfolded cube.

Examples:
  gocube3d net --moves "R U R' U'"
  gocube3d net --alg tperm --plain`,
	RunE: runNet,
}

var (
	netFlags    cubeFlags
	netPlain    bool
	netDescribe bool
)

func init() {
	rootCmd.AddCommand(netCmd)
	netFlags.register(netCmd)
	netCmd.Flags().BoolVar(&netPlain, "plain", false, "Print letters without colors")
	netCmd.Flags().BoolVar(&netDescribe, "describe", false, "Spell the moves out in words")
}

func runNet(cmd *cobra.Command, args []string) error {
	netFlags.resolve(cmd, cfg)
	if !netFlags.permute {
		return fmt.Errorf("net needs --permute: without it turns only animate")
	}

	moves, err := netFlags.queue()
	if err != nil {
		return err
	}

	clk := newManualClock()
	opts, err := netFlags.options(gocube.WithClock(clk.Now))
	if err != nil {
		return err
	}
	c, err := gocube.NewCube(opts...)
	if err != nil {
		return fmt.Errorf("failed to create cube: %w", err)
	}
	if err := playInstant(c, clk, moves); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderNet(c.Net(), netPlain))
	fmt.Fprintf(out, "Moves: %d  %s\n", len(moves), gocube.FormatMoves(moves))
	if simple := notation.Simplify(moves); len(simple) != len(moves) {
		fmt.Fprintf(out, "Simplified: %d  %s\n", len(simple), gocube.FormatMoves(simple))
	}
	if netDescribe {
		fmt.Fprintln(out, notation.DescribeSequence(moves))
	}
	if c.IsSolved() {
		fmt.Fprintln(out, "Solved")
	}
	return nil
}
