// Package geom holds the fixed geometry shared by every piece of the cube:
// corner vertex generation, the surface-to-vertex quad table and the edge
// table.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultGap is the factor vertices are pulled toward their piece center
// when drawn, leaving a visible seam between neighbouring pieces.
const DefaultGap float32 = 0.98

// Surface names one of the six sides of a piece.
type Surface int

const (
	Front Surface = iota
	Back
	Left
	Right
	Top
	Bottom
)

// Surfaces lists every surface in table order.
var Surfaces = [6]Surface{Front, Back, Left, Right, Top, Bottom}

// surfaceQuads maps a surface to 4 indices into CornerVertices, in winding
// order for a filled quad.
//
// Vertex index bits are x<<2 | y<<1 | z, with 0 the negative half edge.
var surfaceQuads = [6][4]int{
	Front:  {1, 3, 7, 5},
	Back:   {0, 2, 6, 4},
	Left:   {0, 1, 3, 2},
	Right:  {4, 6, 7, 5},
	Top:    {2, 3, 7, 6},
	Bottom: {0, 1, 5, 4},
}

// Edges lists the 12 edges of a piece as index pairs into CornerVertices.
// The two corners of an edge differ in exactly one index bit.
var Edges = [12][2]int{
	{2, 3}, // left top
	{0, 1}, // left bottom
	{1, 3}, // left front
	{0, 2}, // left back
	{6, 7}, // right top
	{4, 5}, // right bottom
	{5, 7}, // right front
	{4, 6}, // right back
	{3, 7}, // top front
	{2, 6}, // top back
	{1, 5}, // bottom front
	{0, 4}, // bottom back
}

var surfaceNormals = [6]mgl32.Vec3{
	Front:  {0, 0, 1},
	Back:   {0, 0, -1},
	Left:   {-1, 0, 0},
	Right:  {1, 0, 0},
	Top:    {0, 1, 0},
	Bottom: {0, -1, 0},
}

func (s Surface) String() string {
	switch s {
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the six surfaces.
func (s Surface) Valid() bool {
	return s >= Front && s <= Bottom
}

// Quad returns the corner vertex indices of the surface.
func (s Surface) Quad() [4]int {
	return surfaceQuads[s]
}

// Outline returns the surface's 4 edges as pairs of positions in Quad, in
// Edges order.
func (s Surface) Outline() [4][2]int {
	quad := surfaceQuads[s]
	pos := func(idx int) int {
		for n, v := range quad {
			if v == idx {
				return n
			}
		}
		return -1
	}

	var out [4][2]int
	n := 0
	for _, e := range Edges {
		a, b := pos(e[0]), pos(e[1])
		if a < 0 || b < 0 {
			continue
		}
		out[n] = [2]int{a, b}
		n++
	}
	return out
}

// Normal returns the outward unit normal of the surface.
func (s Surface) Normal() mgl32.Vec3 {
	return surfaceNormals[s]
}

// SurfaceFromNormal returns the surface whose normal matches n after
// rounding each component. It reports false when n is not axis aligned.
func SurfaceFromNormal(n mgl32.Vec3) (Surface, bool) {
	r := Round(n)
	for _, s := range Surfaces {
		if surfaceNormals[s] == r {
			return s, true
		}
	}
	return 0, false
}

// CornerVertices returns the 8 corners of an axis-aligned cube. Offsets are
// generated with x outermost and z innermost; the quad table depends on it.
func CornerVertices(center mgl32.Vec3, edge float32) [8]mgl32.Vec3 {
	half := edge / 2
	offsets := [2]float32{-half, half}

	var vs [8]mgl32.Vec3
	n := 0
	for _, dx := range offsets {
		for _, dy := range offsets {
			for _, dz := range offsets {
				vs[n] = mgl32.Vec3{center[0] + dx, center[1] + dy, center[2] + dz}
				n++
			}
		}
	}
	return vs
}

// Shrink moves v toward center by factor.
func Shrink(v, center mgl32.Vec3, factor float32) mgl32.Vec3 {
	return center.Add(v.Sub(center).Mul(factor))
}

// Round rounds each component to the nearest integer. Rotations by
// multiples of 90 degrees leave float noise that must not leak into grid
// arithmetic.
func Round(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Round(float64(v[0]))),
		float32(math.Round(float64(v[1]))),
		float32(math.Round(float64(v[2]))),
	}
}
