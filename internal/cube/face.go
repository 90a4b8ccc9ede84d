package cube

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/SeamusWaldron/gocube3d/internal/geom"
)

// Face identifies one of the six outer faces and the nine pieces on it.
type Face int

const (
	F Face = iota // Front
	B             // Back
	U             // Up
	D             // Down
	L             // Left
	R             // Right
)

// Faces lists every face in registry order.
var Faces = [6]Face{F, B, U, D, L, R}

// Rotation axes.
var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

type faceInfo struct {
	name    string
	axis    mgl32.Vec3
	sign    float64 // applied to requested angles; opposite faces differ
	surface geom.Surface
	color   Color
	member  func(c Coord) bool
}

// registry is the static Face -> axis / membership table. With the sign
// applied, a positive angle turns any face counter-clockwise as seen from
// outside that face.
var registry = [6]faceInfo{
	F: {"F", AxisZ, 1, geom.Front, Red, func(c Coord) bool { return c.K == 0 }},
	B: {"B", AxisZ, -1, geom.Back, Orange, func(c Coord) bool { return c.K == 2 }},
	U: {"U", AxisY, 1, geom.Top, White, func(c Coord) bool { return c.J == 2 }},
	D: {"D", AxisY, -1, geom.Bottom, Yellow, func(c Coord) bool { return c.J == 0 }},
	L: {"L", AxisX, -1, geom.Left, Green, func(c Coord) bool { return c.I == 0 }},
	R: {"R", AxisX, 1, geom.Right, Blue, func(c Coord) bool { return c.I == 2 }},
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= F && f <= R
}

func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return registry[f].name
}

// ParseFace parses a single face letter, case-insensitively.
func ParseFace(s string) (Face, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, f := range Faces {
		if registry[f].name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("parse face %q: %w", s, ErrUnknownFace)
}

// Axis returns the face's rotation axis, or the zero vector for an
// invalid face.
func (f Face) Axis() mgl32.Vec3 {
	if !f.Valid() {
		return mgl32.Vec3{}
	}
	return registry[f].axis
}

// Surface returns the piece surface that faces outward on f. An invalid
// face yields a surface for which Valid is false.
func (f Face) Surface() geom.Surface {
	if !f.Valid() {
		return -1
	}
	return registry[f].surface
}

// Color returns the sticker color of f on a solved cube.
func (f Face) Color() Color {
	if !f.Valid() {
		return NoSticker
	}
	return registry[f].color
}

// Contains reports whether the piece at c belongs to f.
func (f Face) Contains(c Coord) bool {
	return f.Valid() && registry[f].member(c)
}

// EffectiveAngle converts a requested angle into the angle actually applied
// about the face's axis. B, D and L negate it.
func (f Face) EffectiveAngle(angle float64) float64 {
	if !f.Valid() {
		return 0
	}
	return registry[f].sign * angle
}

// FacesOf returns the faces c belongs to, in registry order.
func FacesOf(c Coord) []Face {
	var faces []Face
	for _, f := range Faces {
		if f.Contains(c) {
			faces = append(faces, f)
		}
	}
	return faces
}

// Stickers derives the solved-state stickers of the piece at c: every face
// the piece belongs to colors its outward surface. Surfaces not in the map
// stay NoSticker.
func Stickers(c Coord) map[geom.Surface]Color {
	s := make(map[geom.Surface]Color, 3)
	for _, f := range FacesOf(c) {
		s[f.Surface()] = f.Color()
	}
	return s
}
