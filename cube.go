package gocube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/SeamusWaldron/gocube3d/internal/cube"
)

// Cube is the animated 3x3x3 cube model.
type Cube = cube.Cube

// NewCube creates a solved cube centered on the origin.
func NewCube(opts ...Option) (*Cube, error) {
	return cube.New(mgl32.Vec3{}, opts...)
}

// NewCubeAt creates a solved cube centered on center.
func NewCubeAt(center mgl32.Vec3, opts ...Option) (*Cube, error) {
	return cube.New(center, opts...)
}

// Apply starts the animated turn for m. A turn already in flight is
// replaced.
func Apply(c *Cube, m Move) error {
	face, err := m.Face.CubeFace()
	if err != nil {
		return err
	}
	angle, err := m.Angle()
	if err != nil {
		return err
	}
	if err := c.Rotate(face, angle); err != nil {
		return fmt.Errorf("apply %s: %w", m.Notation(), err)
	}
	return nil
}
