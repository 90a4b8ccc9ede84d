package cube

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/SeamusWaldron/gocube3d/internal/geom"
)

// permute moves every piece on face into the slot a completed turn of angle
// (requested, degrees) carried it to, and turns its stickers with it. The
// nine slots of a face map onto themselves, so the rest of the grid is
// untouched.
func (c *Cube) permute(face Face, angle float64) {
	m := mgl32.HomogRotate3D(mgl32.DegToRad(float32(face.EffectiveAngle(angle))), face.Axis())

	next := c.pieces
	for _, p := range c.Pieces() {
		if !p.InFace(face) {
			continue
		}

		to := coordFromOffset(mgl32.TransformNormal(p.coord.offset(), m))

		var stickers [6]Color
		for _, s := range geom.Surfaces {
			// quarter and half turns always land on an axis
			ns, _ := geom.SurfaceFromNormal(mgl32.TransformNormal(s.Normal(), m))
			stickers[ns] = p.stickers[s]
		}

		p.place(to, stickers)
		next[to.I][to.J][to.K] = p
	}
	c.pieces = next
}
