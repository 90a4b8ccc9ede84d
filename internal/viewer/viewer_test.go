package viewer

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube3d"
	"github.com/SeamusWaldron/gocube3d/internal/config"
	"github.com/SeamusWaldron/gocube3d/internal/cube"
	"github.com/SeamusWaldron/gocube3d/internal/render"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGame(t *testing.T, opts ...Option) (*Game, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c, err := gocube.NewCube(gocube.WithClock(clk.Now), gocube.WithPermutation(true))
	require.NoError(t, err)
	return New(c, config.Default(), opts...), clk
}

// settle renders frames until the cube is idle.
func settle(t *testing.T, g *Game, clk *fakeClock) {
	t.Helper()
	clk.Advance(g.cube.Duration())
	_, err := g.frame()
	require.NoError(t, err)
}

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{110, 70, true},
		{60, 45, true},
		{9, 45, false},
		{60, 71, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Contains(tt.x, tt.y), "(%v, %v)", tt.x, tt.y)
	}
}

func TestLayoutButtons(t *testing.T) {
	buttons := LayoutButtons(PanelMargin, PanelMargin)
	require.Len(t, buttons, 12)

	labels := make([]string, len(buttons))
	for i, b := range buttons {
		labels[i] = b.Label()
	}
	assert.Equal(t, []string{"F", "F'", "B", "B'", "U", "U'", "D", "D'", "L", "L'", "R", "R'"}, labels)

	// No two buttons overlap.
	for i, a := range buttons {
		cx, cy := a.Rect.X+a.Rect.Width/2, a.Rect.Y+a.Rect.Height/2
		got, ok := ButtonAt(buttons, cx, cy)
		require.True(t, ok)
		assert.Equal(t, a.Move, got.Move, "button %d", i)
	}
	_, ok := ButtonAt(buttons, 900, 500)
	assert.False(t, ok)
}

func TestClickDispatchesTurn(t *testing.T) {
	g, _ := newTestGame(t)
	b := g.buttons[3] // B'

	require.NoError(t, g.handle(Input{
		CursorX: int(b.Rect.X + 2), CursorY: int(b.Rect.Y + 2),
		JustPressed: true, Pressed: true,
	}))
	require.True(t, g.cube.Rotating())
	assert.False(t, g.dragging)

	_, err := g.frame()
	require.NoError(t, err)
	turn, ok := g.cube.Current()
	require.True(t, ok)
	assert.Equal(t, cube.B, turn.Face)
	assert.Equal(t, 90.0, turn.Target)
}

func TestDragOrbitsCamera(t *testing.T) {
	g, _ := newTestGame(t)
	yaw, pitch := g.cam.Yaw, g.cam.Pitch

	require.NoError(t, g.handle(Input{CursorX: 500, CursorY: 300, JustPressed: true, Pressed: true}))
	require.True(t, g.dragging)
	require.NoError(t, g.handle(Input{CursorX: 510, CursorY: 295, Pressed: true}))

	assert.InDelta(t, yaw+2, g.cam.Yaw, 1e-4)
	assert.InDelta(t, pitch-1, g.cam.Pitch, 1e-4)
	assert.False(t, g.cube.Rotating())

	require.NoError(t, g.handle(Input{CursorX: 510, CursorY: 295, JustReleased: true}))
	assert.False(t, g.dragging)
}

func TestKeyboardMoves(t *testing.T) {
	assert.Equal(t, gocube.R, keyMove(gocube.FaceR, false))
	assert.Equal(t, gocube.UPrime, keyMove(gocube.FaceU, true))

	g, clk := newTestGame(t)
	require.NoError(t, g.handle(Input{Moves: []gocube.Move{gocube.R}}))
	settle(t, g, clk)
	assert.False(t, g.cube.IsSolved())

	require.NoError(t, g.handle(Input{Moves: []gocube.Move{gocube.RPrime}}))
	settle(t, g, clk)
	assert.True(t, g.cube.IsSolved())
}

func TestRunQueuePlaysAlgorithm(t *testing.T) {
	g, clk := newTestGame(t, WithAlgorithm(gocube.SexyMove))

	require.NoError(t, g.handle(Input{RunQueue: true}))
	assert.Equal(t, 3, g.player.Pending())

	for i := 0; i < 10 && g.player.Busy(); i++ {
		settle(t, g, clk)
		require.NoError(t, g.handle(Input{}))
	}
	assert.Len(t, g.player.Played(), 4)
	assert.False(t, g.cube.IsSolved())
	assert.Contains(t, g.Status(), "idle")
}

func TestInitialMovesAndReset(t *testing.T) {
	g, _ := newTestGame(t, WithMoves([]gocube.Move{gocube.F, gocube.U}))
	assert.Equal(t, 2, g.player.Pending())

	require.NoError(t, g.handle(Input{}))
	assert.True(t, g.cube.Rotating())
	assert.Equal(t, 1, g.player.Pending())

	require.NoError(t, g.handle(Input{Reset: true}))
	assert.False(t, g.cube.Rotating())
	assert.Zero(t, g.player.Pending())
	assert.True(t, g.cube.IsSolved())
}

func TestQuitTerminates(t *testing.T) {
	g, _ := newTestGame(t)
	err := g.handle(Input{Quit: true})
	assert.True(t, errors.Is(err, ebiten.Termination))
}

func TestStatusShowsTurn(t *testing.T) {
	g, clk := newTestGame(t)
	require.NoError(t, g.handle(Input{Moves: []gocube.Move{gocube.LPrime}}))
	clk.Advance(g.cube.Duration() / 2)
	_, err := g.frame()
	require.NoError(t, err)
	assert.Contains(t, g.Status(), "L'  50%  L up")
}

func TestFrameProjectsVisibleQuads(t *testing.T) {
	g, _ := newTestGame(t)
	g.Layout(1000, 562)
	polys, err := g.frame()
	require.NoError(t, err)
	assert.NotEmpty(t, polys)
	assert.Len(t, g.rec.Quads, 27*6)

	var total render.Counter
	require.NoError(t, g.cube.Render(render.NewContext(&total)))
	assert.Equal(t, 27*6, total.Total)
}
