package cube

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/SeamusWaldron/gocube3d/internal/render"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestCube returns a cube at the origin driven by a fake clock.
func newTestCube(t *testing.T, opts ...Option) (*Cube, *fakeClock) {
	t.Helper()
	clk := newFakeClock()
	c, err := New(mgl32.Vec3{}, append([]Option{WithClock(clk.Now)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, clk
}

// frame renders one frame and returns the recorded quads.
func frame(t *testing.T, c *Cube) []render.Quad {
	t.Helper()
	rec := &render.Recorder{}
	if err := c.Render(render.NewContext(rec)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return rec.Quads
}

// turn runs one full turn of face by angle.
func turn(t *testing.T, c *Cube, clk *fakeClock, face Face, angle float64) {
	t.Helper()
	if err := c.Rotate(face, angle); err != nil {
		t.Fatalf("Rotate(%v, %v): %v", face, angle, err)
	}
	clk.Advance(c.Duration())
	frame(t, c)
	if c.Rotating() {
		t.Fatalf("turn %v %v did not complete", face, angle)
	}
}

// assertMatNear compares two matrices element-wise with an absolute
// tolerance.
func assertMatNear(t *testing.T, want, got mgl32.Mat4, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		if d := want[i] - got[i]; d > 1e-5 || d < -1e-5 {
			t.Errorf("matrix element %d: want %v, got %v %v", i, want[i], got[i], msgAndArgs)
			return
		}
	}
}

// transformsByOwner groups each piece's model transform by its center.
func transformsByOwner(quads []render.Quad) map[mgl32.Vec3]mgl32.Mat4 {
	m := make(map[mgl32.Vec3]mgl32.Mat4)
	for _, q := range quads {
		m[q.Owner] = q.Transform
	}
	return m
}
