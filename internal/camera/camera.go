// Package camera projects world-space quads onto a 2D screen and orders
// them back to front for painter's-algorithm drawing.
package camera

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/SeamusWaldron/gocube3d/internal/config"
	"github.com/SeamusWaldron/gocube3d/internal/geom"
	"github.com/SeamusWaldron/gocube3d/internal/render"
)

// MaxPitch bounds the orbit so the view never flips over the top.
const MaxPitch = 89

// Camera is a perspective camera orbiting the world origin.
type Camera struct {
	FOV         float32 // vertical, degrees
	Near, Far   float32
	Position    mgl32.Vec3 // view translation applied after the orbit
	Yaw, Pitch  float32    // degrees
	Sensitivity float32    // degrees per pixel of drag
}

// FromConfig builds a camera from the [camera] settings.
func FromConfig(c config.Camera) Camera {
	return Camera{
		FOV:         c.FOV,
		Near:        c.Near,
		Far:         c.Far,
		Position:    mgl32.Vec3(c.Position),
		Yaw:         c.Yaw,
		Pitch:       c.Pitch,
		Sensitivity: c.Sensitivity,
	}
}

// Projection returns the perspective matrix for a w by h viewport.
func (c Camera) Projection(w, h int) mgl32.Mat4 {
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// View returns the world-to-view matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(c.Pitch))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.Yaw)))
}

// Orbit turns the camera by a drag of dx, dy pixels.
func (c *Camera) Orbit(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+dy*c.Sensitivity, -MaxPitch, MaxPitch)
}

// Project maps a world point to screen pixels with y growing downward.
func (c Camera) Project(v mgl32.Vec3, w, h int) mgl32.Vec2 {
	win := mgl32.Project(v, c.View(), c.Projection(w, h), 0, 0, w, h)
	return mgl32.Vec2{win.X(), float32(h) - win.Y()}
}

// Polygon is a quad projected to the screen.
type Polygon struct {
	Points  [4]mgl32.Vec2
	Depth   float32 // view-space z of the quad's center; more negative is farther
	Color   color.RGBA
	Surface geom.Surface
}

// Outline returns the polygon's 4 screen-space edges, taken from the
// surface's entries in geom.Edges.
func (p Polygon) Outline() [4][2]mgl32.Vec2 {
	var segs [4][2]mgl32.Vec2
	for n, e := range p.Surface.Outline() {
		segs[n] = [2]mgl32.Vec2{p.Points[e[0]], p.Points[e[1]]}
	}
	return segs
}

// Polygons projects quads to a w by h screen, dropping those facing away
// from the camera or crossing the near plane, and returns them farthest
// first.
func (c Camera) Polygons(quads []render.Quad, w, h int) []Polygon {
	view := c.View()
	proj := c.Projection(w, h)

	polys := make([]Polygon, 0, len(quads)/2)
	for _, q := range quads {
		if !c.facing(q, view) {
			continue
		}

		p := Polygon{Color: q.Color, Surface: q.Surface, Depth: q.Depth(view)}
		visible := true
		for i, v := range q.World {
			if mgl32.TransformCoordinate(v, view).Z() > -c.Near {
				visible = false
				break
			}
			win := mgl32.Project(v, view, proj, 0, 0, w, h)
			p.Points[i] = mgl32.Vec2{win.X(), float32(h) - win.Y()}
		}
		if visible {
			polys = append(polys, p)
		}
	}

	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].Depth < polys[j].Depth
	})
	return polys
}

// facing reports whether the quad's outward side points at the camera.
func (c Camera) facing(q render.Quad, view mgl32.Mat4) bool {
	mv := view.Mul4(q.Transform)
	n := mgl32.TransformNormal(q.Surface.Normal(), mv)

	var center mgl32.Vec3
	for _, v := range q.World {
		center = center.Add(v)
	}
	center = mgl32.TransformCoordinate(center.Mul(0.25), view)
	return n.Dot(center) < 0
}
