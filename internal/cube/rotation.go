package cube

import (
	"fmt"
	"math"
	"time"

	"github.com/tanema/gween"
)

// rotation is the turn currently animating. The zero value is idle.
type rotation struct {
	active bool
	face   Face
	angle  float64 // requested, degrees
	start  time.Time
	tween  *gween.Tween

	reached float64 // largest |angle| drawn so far
}

// supportedAngle reports whether angle is a quarter or half turn.
func supportedAngle(angle float64) bool {
	switch angle {
	case 90, -90, 180, -180:
		return true
	}
	return false
}

// Rotate starts turning face by angle degrees (±90 or ±180). A turn already
// in flight is replaced, not queued: its partial rotation is dropped.
// On error the cube is left exactly as it was.
func (c *Cube) Rotate(face Face, angle float64) error {
	if !face.Valid() {
		return fmt.Errorf("rotate %v: %w", face, ErrUnknownFace)
	}
	if !supportedAngle(angle) {
		return fmt.Errorf("rotate %s by %g: %w", face, angle, ErrUnsupportedAngle)
	}

	if c.rot.active {
		c.log.Debug("turn pre-empted", "face", c.rot.face.String(), "angle", c.rot.angle, "by", face.String())
	}
	c.rot = rotation{
		active: true,
		face:   face,
		angle:  angle,
		start:  c.cfg.clock(),
		tween:  gween.New(0, float32(angle), float32(c.cfg.duration.Seconds()), c.cfg.easing),
	}
	c.log.Debug("turn started", "face", face.String(), "angle", angle)
	return nil
}

// Rotating reports whether a turn is in flight.
func (c *Cube) Rotating() bool {
	return c.rot.active
}

// Current returns the turn as of the most recent frame. ok is false when
// the cube is idle.
func (c *Cube) Current() (turn FrameTurn, ok bool) {
	if !c.rot.active {
		return FrameTurn{}, false
	}
	return c.last, true
}

// LastFrame returns the turn as drawn by the most recent rotating frame,
// including the final one. It is the zero FrameTurn before any turn.
func (c *Cube) LastFrame() FrameTurn {
	return c.last
}

// advance samples the clock and works out how far the turn has got.
// Completion is clamped to [0, 1] so clock skew can neither run a turn
// backwards nor overshoot it.
func (c *Cube) advance() FrameTurn {
	elapsed := c.cfg.clock().Sub(c.rot.start)
	completion := clamp(elapsed.Seconds()/c.cfg.duration.Seconds(), 0, 1)

	turn := FrameTurn{
		Face:       c.rot.face,
		Target:     c.rot.angle,
		Completion: completion,
	}
	if completion >= 1 {
		turn.Angle = c.rot.angle
	} else {
		eased, _ := c.rot.tween.Set(float32(completion * c.cfg.duration.Seconds()))
		// Held within [reached, |target|]; eased curves may overshoot or bounce.
		sign := math.Copysign(1, c.rot.angle)
		mag := clamp(sign*float64(eased), c.rot.reached, math.Abs(c.rot.angle))
		c.rot.reached = mag
		turn.Angle = sign * mag
	}
	c.last = turn
	return turn
}

// finish clears the finished turn and, when enabled, re-slots the turned
// pieces so the logical state matches what was drawn.
func (c *Cube) finish() {
	done := c.rot
	c.rot = rotation{}
	c.log.Debug("turn complete", "face", done.face.String(), "angle", done.angle)

	if c.cfg.permute {
		c.permute(done.face, done.angle)
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
