package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube3d"
	"github.com/SeamusWaldron/gocube3d/internal/config"
	"github.com/SeamusWaldron/gocube3d/internal/render"
)

// cubeFlags are the cube options shared by every subcommand.
type cubeFlags struct {
	permute bool
	easing  string
	moves   string
	alg     string
}

func (f *cubeFlags) register(cmd *cobra.Command) {
	d := config.Default().Cube
	cmd.Flags().BoolVar(&f.permute, "permute", d.Permute, "Re-slot pieces after each turn so the cube state follows the moves")
	cmd.Flags().StringVar(&f.easing, "easing", d.Easing, "Turn easing (linear, in-out-quad, in-out-cubic, in-out-sine)")
	cmd.Flags().StringVarP(&f.moves, "moves", "m", "", `Moves to play, e.g. "R U R' U'"`)
	cmd.Flags().StringVarP(&f.alg, "alg", "a", "", "Named algorithm (sexy, sexy-prime, tperm, checkerboard)")
}

// resolve fills options the user did not set on the command line from the
// loaded config.
func (f *cubeFlags) resolve(cmd *cobra.Command, c config.Config) {
	if !cmd.Flags().Changed("permute") {
		f.permute = c.Cube.Permute
	}
	if !cmd.Flags().Changed("easing") {
		f.easing = c.Cube.Easing
	}
}

// options converts the flags to cube options.
func (f *cubeFlags) options(extra ...gocube.Option) ([]gocube.Option, error) {
	easing, ok := config.Easings[f.easing]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", f.easing)
	}
	opts := []gocube.Option{
		gocube.WithPermutation(f.permute),
		gocube.WithEasing(easing),
		gocube.WithLogger(logger),
	}
	return append(opts, extra...), nil
}

// queue returns --moves followed by --alg.
func (f *cubeFlags) queue() ([]gocube.Move, error) {
	moves, err := gocube.ParseMoves(f.moves)
	if err != nil {
		return nil, fmt.Errorf("--moves: %w", err)
	}
	if f.alg != "" {
		alg, ok := gocube.Algorithm(f.alg)
		if !ok {
			return nil, fmt.Errorf("unknown algorithm %q", f.alg)
		}
		moves = append(moves, alg...)
	}
	return moves, nil
}

// manualClock is a clock that only moves when told to.
type manualClock struct {
	t time.Time
}

func newManualClock() *manualClock {
	return &manualClock{t: time.Unix(0, 0).UTC()}
}

func (c *manualClock) Now() time.Time          { return c.t }
func (c *manualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// playInstant runs every move to completion on a cube driven by clk.
func playInstant(c *gocube.Cube, clk *manualClock, moves []gocube.Move) error {
	p := gocube.NewPlayer(c, gocube.WithPlayerClock(clk.Now), gocube.WithPlayerLogger(logger))
	p.Enqueue(moves...)

	ctx := render.NewContext(&render.Counter{})
	for p.Busy() {
		if _, _, err := p.Step(); err != nil {
			return err
		}
		clk.Advance(c.Duration())
		if err := c.Render(ctx); err != nil {
			return err
		}
	}
	return nil
}
