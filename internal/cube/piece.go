package cube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/SeamusWaldron/gocube3d/internal/geom"
	"github.com/SeamusWaldron/gocube3d/internal/render"
)

// Coord is a piece's (i, j, k) slot in the 3x3x3 grid. i runs left to
// right, j bottom to top, k front to back.
type Coord struct {
	I, J, K int
}

// Valid reports whether every component is in 0..2.
func (c Coord) Valid() bool {
	return c.I >= 0 && c.I <= 2 && c.J >= 0 && c.J <= 2 && c.K >= 0 && c.K <= 2
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.I, c.J, c.K)
}

// offset returns the piece's position relative to the cube center in units
// of the piece spacing. k = 0 is the front, at +Z.
func (c Coord) offset() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.I - 1), float32(c.J - 1), float32(1 - c.K)}
}

// coordFromOffset inverts offset.
func coordFromOffset(v mgl32.Vec3) Coord {
	v = geom.Round(v)
	return Coord{I: int(v[0]) + 1, J: int(v[1]) + 1, K: 1 - int(v[2])}
}

// Coords returns all 27 grid coordinates, i outermost and k innermost.
func Coords() []Coord {
	coords := make([]Coord, 0, 27)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				coords = append(coords, Coord{i, j, k})
			}
		}
	}
	return coords
}

// Kind classifies a piece by how many faces it belongs to.
type Kind int

const (
	Core   Kind = 0
	Center Kind = 1
	Edge   Kind = 2
	Corner Kind = 3
)

func (k Kind) String() string {
	switch k {
	case Core:
		return "core"
	case Center:
		return "center"
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	default:
		return "?"
	}
}

// FrameTurn is the in-flight turn as seen by one frame.
type FrameTurn struct {
	Face       Face
	Angle      float64 // requested angle reached so far, degrees
	Target     float64 // requested angle at completion
	Completion float64 // 0..1
}

// Effective returns the angle applied about the face axis this frame.
func (t FrameTurn) Effective() float64 {
	return t.Face.EffectiveAngle(t.Angle)
}

// Renderer is anything with a fixed center that can draw itself, either at
// rest (turn == nil) or part-way through a face turn.
type Renderer interface {
	Center() mgl32.Vec3
	Render(ctx *render.Context, turn *FrameTurn) error
}

var _ Renderer = (*Piece)(nil)

// Piece is one of the 27 sub-cubes.
type Piece struct {
	cubeCenter mgl32.Vec3
	step       float32 // distance between neighbouring piece centers
	edge       float32
	gap        float32

	coord    Coord
	center   mgl32.Vec3
	faces    []Face
	stickers [6]Color // indexed by geom.Surface
	vertices [8]mgl32.Vec3
}

// newPiece builds a piece at coord. stickers overlays the all-NoSticker
// default; a nil map leaves the piece black.
func newPiece(cubeCenter mgl32.Vec3, step, edge, gap float32, coord Coord, stickers map[geom.Surface]Color) (*Piece, error) {
	if !coord.Valid() {
		return nil, fmt.Errorf("new piece %s: %w", coord, ErrInvalidCoord)
	}

	p := &Piece{
		cubeCenter: cubeCenter,
		step:       step,
		edge:       edge,
		gap:        gap,
	}
	var colors [6]Color
	for s, c := range stickers {
		if !s.Valid() {
			return nil, fmt.Errorf("new piece %s: sticker on %v: %w", coord, s, ErrInvalidOption)
		}
		colors[s] = c
	}
	p.place(coord, colors)
	return p, nil
}

// place moves the piece into a grid slot, re-deriving everything that
// depends on the slot.
func (p *Piece) place(coord Coord, stickers [6]Color) {
	p.coord = coord
	p.center = p.cubeCenter.Add(coord.offset().Mul(p.step))
	p.faces = FacesOf(coord)
	p.stickers = stickers
	p.vertices = geom.CornerVertices(p.center, p.edge)
}

// Coord returns the piece's current grid slot.
func (p *Piece) Coord() Coord { return p.coord }

// Center returns the world-space rest position of the piece.
func (p *Piece) Center() mgl32.Vec3 { return p.center }

// Vertices returns the 8 rest-pose corners.
func (p *Piece) Vertices() [8]mgl32.Vec3 { return p.vertices }

// Faces returns the faces the piece belongs to.
func (p *Piece) Faces() []Face {
	return append([]Face(nil), p.faces...)
}

// Kind classifies the piece by face membership.
func (p *Piece) Kind() Kind { return Kind(len(p.faces)) }

// Sticker returns the color on surface s.
func (p *Piece) Sticker(s geom.Surface) Color { return p.stickers[s] }

// Stickers returns the colors of all six surfaces, indexed by geom.Surface.
func (p *Piece) Stickers() [6]Color { return p.stickers }

// InFace reports whether the piece belongs to f.
func (p *Piece) InFace(f Face) bool {
	for _, pf := range p.faces {
		if pf == f {
			return true
		}
	}
	return false
}

// Render draws the six surfaces. When turn names a face this piece belongs
// to, the piece is rotated about the cube center by the turn's effective
// angle first. The rotation lives only in a scoped transform; stored
// vertices never change.
func (p *Piece) Render(ctx *render.Context, turn *FrameTurn) error {
	if turn == nil {
		p.emit(ctx)
		return nil
	}
	if !turn.Face.Valid() {
		return fmt.Errorf("render piece %s: %v: %w", p.coord, turn.Face, ErrUnknownFace)
	}
	if !p.InFace(turn.Face) {
		p.emit(ctx)
		return nil
	}

	return ctx.Scope(func() error {
		ctx.Translate(p.cubeCenter)
		ctx.Rotate(float32(turn.Effective()), turn.Face.Axis())
		ctx.Translate(p.cubeCenter.Mul(-1))
		p.emit(ctx)
		return nil
	})
}

func (p *Piece) emit(ctx *render.Context) {
	for _, s := range geom.Surfaces {
		var quad [4]mgl32.Vec3
		for n, idx := range s.Quad() {
			quad[n] = geom.Shrink(p.vertices[idx], p.center, p.gap)
		}
		ctx.Emit(p.center, s, quad, p.stickers[s].RGBA())
	}
}
