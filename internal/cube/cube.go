// Package cube models a 3x3x3 Rubik's cube as 27 renderable pieces and
// animates face turns over a fixed duration.
package cube

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/SeamusWaldron/gocube3d/internal/render"
)

// Cube owns the 27 pieces and the single in-flight turn.
//
// A Cube is driven from one rendering loop: Rotate and Render must not be
// called concurrently.
type Cube struct {
	center mgl32.Vec3
	cfg    *config
	log    *slog.Logger

	pieces [3][3][3]*Piece
	rot    rotation
	last   FrameTurn
}

// New creates a solved cube centered on center.
func New(center mgl32.Vec3, opts ...Option) (*Cube, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("new cube: %w", err)
	}

	c := &Cube{
		center: center,
		cfg:    cfg,
		log:    cfg.logger,
	}
	if err := c.assemble(); err != nil {
		return nil, err
	}
	return c, nil
}

// assemble places a solved piece in every grid slot.
func (c *Cube) assemble() error {
	step := c.cfg.edge * c.cfg.spacing
	for _, coord := range Coords() {
		p, err := newPiece(c.center, step, c.cfg.edge, c.cfg.gap, coord, Stickers(coord))
		if err != nil {
			return fmt.Errorf("assemble cube: %w", err)
		}
		c.pieces[coord.I][coord.J][coord.K] = p
	}
	return nil
}

// Reset returns the cube to the solved state and drops any in-flight turn.
func (c *Cube) Reset() error {
	c.rot = rotation{}
	c.last = FrameTurn{}
	return c.assemble()
}

// Center returns the cube's world-space center.
func (c *Cube) Center() mgl32.Vec3 {
	return c.center
}

// Duration returns how long one turn animates.
func (c *Cube) Duration() time.Duration {
	return c.cfg.duration
}

// Permutes reports whether completed turns re-slot the turned pieces.
func (c *Cube) Permutes() bool {
	return c.cfg.permute
}

// Piece returns the piece currently in slot coord.
func (c *Cube) Piece(coord Coord) (*Piece, error) {
	if !coord.Valid() {
		return nil, fmt.Errorf("piece %s: %w", coord, ErrInvalidCoord)
	}
	return c.pieces[coord.I][coord.J][coord.K], nil
}

// Pieces returns all 27 pieces in slot order, i outermost and k innermost.
func (c *Cube) Pieces() []*Piece {
	ps := make([]*Piece, 0, 27)
	for _, coord := range Coords() {
		ps = append(ps, c.pieces[coord.I][coord.J][coord.K])
	}
	return ps
}

// FaceMembers returns the nine pieces currently on face f.
func (c *Cube) FaceMembers(f Face) ([]*Piece, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("face members %v: %w", f, ErrUnknownFace)
	}
	var ps []*Piece
	for _, p := range c.Pieces() {
		if p.InFace(f) {
			ps = append(ps, p)
		}
	}
	return ps, nil
}

// Render draws every piece. While a turn is in flight it advances the turn
// from the clock and rotates the turning face's pieces by the angle reached.
// The frame on which the turn completes is drawn at the full angle, after
// which the cube is idle again.
func (c *Cube) Render(ctx *render.Context) error {
	if !c.rot.active {
		return c.renderPieces(ctx, nil)
	}

	turn := c.advance()
	if err := c.renderPieces(ctx, &turn); err != nil {
		return err
	}
	if turn.Completion >= 1 {
		c.finish()
	}
	return nil
}

func (c *Cube) renderPieces(ctx *render.Context, turn *FrameTurn) error {
	for _, p := range c.Pieces() {
		if err := p.Render(ctx, turn); err != nil {
			return fmt.Errorf("render cube: %w", err)
		}
	}
	return nil
}
