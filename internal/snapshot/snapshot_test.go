package snapshot

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube3d/internal/camera"
	"github.com/SeamusWaldron/gocube3d/internal/config"
	"github.com/SeamusWaldron/gocube3d/internal/cube"
	"github.com/SeamusWaldron/gocube3d/internal/render"
)

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Width, opts.Height = 200, 120
	return opts
}

func TestImageDrawsCube(t *testing.T) {
	c, err := cube.New(mgl32.Vec3{})
	require.NoError(t, err)

	opts := smallOptions()
	img, err := Image(c, camera.FromConfig(config.Default().Camera), opts)
	require.NoError(t, err)
	require.Equal(t, 200, img.Bounds().Dx())
	require.Equal(t, 120, img.Bounds().Dy())

	// The corner is background, and something other than background was
	// drawn where the cube projects.
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.InDelta(t, float64(opts.Background.R), float64(r>>8), 1)
	assert.InDelta(t, float64(opts.Background.G), float64(g>>8), 1)
	assert.InDelta(t, float64(opts.Background.B), float64(b>>8), 1)

	drawn := 0
	for y := 0; y < 120; y++ {
		for x := 0; x < 200; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			if absDiff(pr>>8, uint32(opts.Background.R))+absDiff(pg>>8, uint32(opts.Background.G))+absDiff(pb>>8, uint32(opts.Background.B)) > 6 {
				drawn++
			}
		}
	}
	assert.Greater(t, drawn, 500)
}

func TestMidTurnFrameDiffers(t *testing.T) {
	clk := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := func() time.Time { return clk }
	cam := camera.FromConfig(config.Default().Camera)

	rest, err := cube.New(mgl32.Vec3{}, cube.WithClock(now))
	require.NoError(t, err)
	var restPNG bytes.Buffer
	require.NoError(t, WritePNG(&restPNG, rest, cam, smallOptions()))

	turning, err := cube.New(mgl32.Vec3{}, cube.WithClock(now))
	require.NoError(t, err)
	require.NoError(t, turning.Rotate(cube.U, 90))
	clk = clk.Add(turning.Duration() / 2)
	var turnPNG bytes.Buffer
	require.NoError(t, WritePNG(&turnPNG, turning, cam, smallOptions()))

	_, err = png.Decode(bytes.NewReader(turnPNG.Bytes()))
	require.NoError(t, err)
	assert.NotEqual(t, restPNG.Bytes(), turnPNG.Bytes())
}

func TestSavePNG(t *testing.T) {
	c, err := cube.New(mgl32.Vec3{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cube.png")
	require.NoError(t, SavePNG(path, c, camera.FromConfig(config.Default().Camera), smallOptions()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestBadSize(t *testing.T) {
	c, err := cube.New(mgl32.Vec3{})
	require.NoError(t, err)
	opts := smallOptions()
	opts.Width = 0
	_, err = Image(c, camera.Camera{}, opts)
	assert.True(t, errors.Is(err, ErrBadSize))
}

// failingCanvas records calls and fails the named operation.
type failingCanvas struct {
	failOn  string
	fills   int
	strokes int
	lines   int
	closed  bool
}

func (f *failingCanvas) ClearWithColor(gg.RGBA)     {}
func (f *failingCanvas) SetLineWidth(float64)       {}
func (f *failingCanvas) SetColor(color.Color)       {}
func (f *failingCanvas) SetRGBA(r, g, b, a float64) {}
func (f *failingCanvas) MoveTo(x, y float64)        {}
func (f *failingCanvas) LineTo(x, y float64)        { f.lines++ }
func (f *failingCanvas) ClosePath()                 {}
func (f *failingCanvas) Fill() error                { f.fills++; return f.fail("fill") }
func (f *failingCanvas) Stroke() error              { f.strokes++; return f.fail("stroke") }
func (f *failingCanvas) FlushGPU() error            { return f.fail("flush") }

func (f *failingCanvas) Close() error {
	f.closed = true
	return nil
}

func (f *failingCanvas) fail(op string) error {
	if f.failOn == op {
		return errors.New(op + " failed")
	}
	return nil
}

func testPolygons(t *testing.T) []camera.Polygon {
	t.Helper()
	c, err := cube.New(mgl32.Vec3{})
	require.NoError(t, err)
	var rec render.Recorder
	require.NoError(t, c.Render(render.NewContext(&rec)))
	polys := camera.FromConfig(config.Default().Camera).Polygons(rec.Quads, 200, 120)
	require.NotEmpty(t, polys)
	return polys
}

func TestPaintClosesCanvasOnError(t *testing.T) {
	polys := testPolygons(t)
	for _, op := range []string{"fill", "stroke", "flush"} {
		cv := &failingCanvas{failOn: op}
		err := paint(cv, polys, smallOptions())
		assert.ErrorContains(t, err, op, op)
		assert.True(t, cv.closed, "%s: canvas left open", op)
	}
}

func TestPaintLeavesCanvasOpen(t *testing.T) {
	polys := testPolygons(t)
	cv := &failingCanvas{}
	require.NoError(t, paint(cv, polys, smallOptions()))
	assert.False(t, cv.closed)
	assert.Equal(t, len(polys), cv.fills)
	assert.Equal(t, len(polys), cv.strokes)
	// 3 perimeter lines per fill plus 4 edges per outline.
	assert.Equal(t, 7*len(polys), cv.lines)
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
