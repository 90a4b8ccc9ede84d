package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube3d/internal/geom"
)

func TestScopeRestoresTransform(t *testing.T) {
	ctx := NewContext(&Recorder{})
	require.Equal(t, 1, ctx.Depth())

	err := ctx.Scope(func() error {
		ctx.Translate(mgl32.Vec3{1, 2, 3})
		assert.Equal(t, 2, ctx.Depth())
		assert.False(t, ctx.Transform().ApproxEqual(mgl32.Ident4()))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.Depth())
	assert.True(t, ctx.Transform().ApproxEqual(mgl32.Ident4()))
}

func TestScopeRestoresOnError(t *testing.T) {
	ctx := NewContext(&Recorder{})
	boom := errors.New("boom")

	err := ctx.Scope(func() error {
		ctx.Rotate(90, mgl32.Vec3{0, 1, 0})
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, ctx.Depth())
	assert.True(t, ctx.Transform().ApproxEqual(mgl32.Ident4()))
}

func TestEmitAppliesTransform(t *testing.T) {
	rec := &Recorder{}
	ctx := NewContext(rec)
	verts := [4]mgl32.Vec3{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}

	err := ctx.Scope(func() error {
		ctx.Rotate(90, mgl32.Vec3{0, 0, 1})
		ctx.Emit(mgl32.Vec3{}, geom.Right, verts, color.RGBA{R: 255, A: 255})
		return nil
	})
	require.NoError(t, err)
	require.Len(t, rec.Quads, 1)

	q := rec.Quads[0]
	assert.Equal(t, verts, q.Local)
	// +90 about Z takes +X to +Y
	want := mgl32.Vec3{0, 1, 0}
	for i := range want {
		assert.InDelta(t, want[i], q.World[0][i], 1e-5, "got %v", q.World[0])
	}
	assert.Equal(t, geom.Right, q.Surface)
}

func TestCounter(t *testing.T) {
	c := &Counter{}
	ctx := NewContext(c)
	var verts [4]mgl32.Vec3

	ctx.Emit(mgl32.Vec3{}, geom.Top, verts, color.RGBA{})
	_ = ctx.Scope(func() error {
		ctx.Rotate(45, mgl32.Vec3{1, 0, 0})
		ctx.Emit(mgl32.Vec3{}, geom.Top, verts, color.RGBA{})
		return nil
	})

	assert.Equal(t, 2, c.Total)
	assert.Equal(t, 1, c.Rotated)
}
