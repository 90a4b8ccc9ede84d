// Package render is the drawing context pieces render into: a scoped model
// transform stack and a sink that receives world-space quads.
//
// Nothing here owns a window. Front-ends plug in a Sink (the viewer and the
// snapshot writer both use a Recorder and project its quads themselves).
package render

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl32/matstack"

	"github.com/SeamusWaldron/gocube3d/internal/geom"
)

// Quad is one filled, coloured quadrilateral.
type Quad struct {
	Owner     mgl32.Vec3    // center of the object that emitted it
	Surface   geom.Surface  // which side of the owner
	Local     [4]mgl32.Vec3 // vertices before the model transform
	World     [4]mgl32.Vec3 // vertices after the model transform
	Transform mgl32.Mat4    // model transform in effect when emitted
	Color     color.RGBA
}

// Depth returns the mean z of the quad's vertices in the given space.
func (q Quad) Depth(m mgl32.Mat4) float32 {
	var z float32
	for _, v := range q.World {
		z += mgl32.TransformCoordinate(v, m)[2]
	}
	return z / 4
}

// Sink receives quads as they are emitted.
type Sink interface {
	Draw(q Quad)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(q Quad)

// Draw calls f(q).
func (f SinkFunc) Draw(q Quad) { f(q) }

// Context carries the model transform stack for one frame.
// It is not safe for concurrent use; pieces are drawn one after another.
type Context struct {
	stack *matstack.MatStack
	sink  Sink
}

// NewContext returns a context with an identity transform drawing into sink.
func NewContext(sink Sink) *Context {
	return &Context{
		stack: matstack.NewMatStack(),
		sink:  sink,
	}
}

// Scope runs fn with a copy of the current transform pushed, and restores
// the previous transform afterwards whatever fn returns.
func (c *Context) Scope(fn func() error) (err error) {
	c.stack.Push()
	defer func() {
		if popErr := c.stack.Pop(); popErr != nil && err == nil {
			err = fmt.Errorf("render: restore transform: %w", popErr)
		}
	}()
	return fn()
}

// Translate post-multiplies a translation onto the current transform.
func (c *Context) Translate(v mgl32.Vec3) {
	c.stack.RightMul(mgl32.Translate3D(v[0], v[1], v[2]))
}

// Rotate post-multiplies a rotation of degrees about axis.
func (c *Context) Rotate(degrees float32, axis mgl32.Vec3) {
	c.stack.RightMul(mgl32.HomogRotate3D(mgl32.DegToRad(degrees), axis.Normalize()))
}

// Transform returns the current model transform.
func (c *Context) Transform() mgl32.Mat4 {
	return c.stack.Peek()
}

// Depth is the number of transforms on the stack, 1 when nothing is pushed.
func (c *Context) Depth() int {
	return len(*c.stack)
}

// Emit transforms verts by the current model transform and hands the quad
// to the sink.
func (c *Context) Emit(owner mgl32.Vec3, s geom.Surface, verts [4]mgl32.Vec3, col color.RGBA) {
	m := c.stack.Peek()
	q := Quad{
		Owner:     owner,
		Surface:   s,
		Local:     verts,
		Transform: m,
		Color:     col,
	}
	for i, v := range verts {
		q.World[i] = mgl32.TransformCoordinate(v, m)
	}
	c.sink.Draw(q)
}

// Recorder is a Sink that keeps every quad drawn into it.
type Recorder struct {
	Quads []Quad
}

// Draw appends q.
func (r *Recorder) Draw(q Quad) {
	r.Quads = append(r.Quads, q)
}

// Reset drops recorded quads but keeps the backing storage.
func (r *Recorder) Reset() {
	r.Quads = r.Quads[:0]
}

// Counter is a Sink that only counts quads and how many were moved off
// their rest pose.
type Counter struct {
	Total   int
	Rotated int
}

// Draw counts q.
func (c *Counter) Draw(q Quad) {
	c.Total++
	if !q.Transform.ApproxEqual(mgl32.Ident4()) {
		c.Rotated++
	}
}
