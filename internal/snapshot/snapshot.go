// Package snapshot draws a single frame of the cube to a PNG without a
// window.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/SeamusWaldron/gocube3d/internal/camera"
	"github.com/SeamusWaldron/gocube3d/internal/cube"
	"github.com/SeamusWaldron/gocube3d/internal/render"
)

// ErrBadSize is returned for a non-positive image size.
var ErrBadSize = errors.New("snapshot: image size must be positive")

// Options controls how a frame is drawn.
type Options struct {
	Width, Height int
	Background    color.RGBA
	Outline       bool
	LineWidth     float64
}

// DefaultOptions matches the viewer's default window.
func DefaultOptions() Options {
	return Options{
		Width:      1000,
		Height:     562,
		Background: color.RGBA{R: 0x1a, G: 0x1a, B: 0x24, A: 0xff},
		Outline:    true,
		LineWidth:  1.5,
	}
}

// canvas is the part of *gg.Context a frame is painted with.
type canvas interface {
	ClearWithColor(col gg.RGBA)
	SetLineWidth(width float64)
	SetColor(col color.Color)
	SetRGBA(r, g, b, a float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill() error
	Stroke() error
	FlushGPU() error
	Close() error
}

var _ canvas = (*gg.Context)(nil)

// Draw renders one frame of c as seen by cam. Rendering advances any turn
// in flight exactly as a viewer frame would. The caller closes the
// returned context.
func Draw(c *cube.Cube, cam camera.Camera, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", opts.Width, opts.Height, ErrBadSize)
	}

	var rec render.Recorder
	if err := c.Render(render.NewContext(&rec)); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	if err := paint(dc, cam.Polygons(rec.Quads, opts.Width, opts.Height), opts); err != nil {
		return nil, err
	}
	return dc, nil
}

// paint fills polys back to front and strokes their edges. On error the
// canvas is closed.
func paint(cv canvas, polys []camera.Polygon, opts Options) (err error) {
	defer func() {
		if err != nil {
			cv.Close()
		}
	}()

	cv.ClearWithColor(gg.FromColor(opts.Background))
	cv.SetLineWidth(opts.LineWidth)

	for _, p := range polys {
		cv.MoveTo(float64(p.Points[0].X()), float64(p.Points[0].Y()))
		for _, pt := range p.Points[1:] {
			cv.LineTo(float64(pt.X()), float64(pt.Y()))
		}
		cv.ClosePath()
		cv.SetColor(p.Color)
		if err := cv.Fill(); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
		if !opts.Outline {
			continue
		}

		for _, seg := range p.Outline() {
			cv.MoveTo(float64(seg[0].X()), float64(seg[0].Y()))
			cv.LineTo(float64(seg[1].X()), float64(seg[1].Y()))
		}
		cv.SetRGBA(0, 0, 0, 1)
		if err := cv.Stroke(); err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
	}
	if err := cv.FlushGPU(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Image renders one frame and returns it as an image.
func Image(c *cube.Cube, cam camera.Camera, opts Options) (image.Image, error) {
	dc, err := Draw(c, cam, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG renders one frame and encodes it to w.
func WritePNG(w io.Writer, c *cube.Cube, cam camera.Camera, opts Options) error {
	dc, err := Draw(c, cam, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// SavePNG renders one frame to the file at path.
func SavePNG(path string, c *cube.Cube, cam camera.Camera, opts Options) error {
	dc, err := Draw(c, cam, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
