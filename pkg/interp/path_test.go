package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/parashape/pkg/math"
)

func squarePath(mode Mode) Path {
	p := NewPath([]math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: -1, Y: 0.5, Z: 1},
	})
	p.Mode = mode
	return p
}

func TestNewPathDefaults(t *testing.T) {
	p := NewPath(nil)
	assert.Equal(t, float32(DefaultTension), p.Tension)
	assert.Equal(t, CatmullRomMode, p.Mode)
}

func TestPathValidate(t *testing.T) {
	pts := []math.Vec3{{}, {X: 1}, {X: 2}}

	assert.NoError(t, Path{Points: pts[:2], Mode: LinearMode}.Validate())
	assert.ErrorIs(t, Path{Points: pts[:1], Mode: LinearMode}.Validate(), ErrTooFewPoints)
	assert.ErrorIs(t, Path{Points: pts, Mode: CatmullRomMode}.Validate(), ErrTooFewPoints)
	assert.NoError(t, squarePath(CatmullRomMode).Validate())
}

func TestPathAtPanicsOnShortPath(t *testing.T) {
	assert.Panics(t, func() { Path{Points: []math.Vec3{{}}, Mode: LinearMode}.At(0) })
}

func TestPathSegment(t *testing.T) {
	p := squarePath(CatmullRomMode)

	tests := []struct {
		i    int
		want [4]int
	}{
		{0, [4]int{4, 0, 1, 2}},
		{2, [4]int{1, 2, 3, 4}},
		{3, [4]int{2, 3, 4, 0}},
		{4, [4]int{3, 4, 0, 1}},
		{5, [4]int{4, 0, 1, 2}},
		{-1, [4]int{3, 4, 0, 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Segment(tt.i), "segment %d", tt.i)
	}
}

func TestPathAtHitsControlPoints(t *testing.T) {
	for _, mode := range []Mode{LinearMode, CatmullRomMode} {
		t.Run(mode.String(), func(t *testing.T) {
			p := squarePath(mode)
			for i, pt := range p.Points {
				assertVec(t, pt, p.At(float32(i)), "point %d", i)
			}
		})
	}
}

func TestPathAtWraps(t *testing.T) {
	for _, mode := range []Mode{LinearMode, CatmullRomMode} {
		t.Run(mode.String(), func(t *testing.T) {
			p := squarePath(mode)
			n := float32(p.Len())
			for _, e := range []float32{0.25, 1.5, 3.75} {
				assertVec(t, p.At(e), p.At(e+n), "elapsed %v", e)
				assertVec(t, p.At(e), p.At(e-n), "elapsed %v", e)
			}
		})
	}
}

func TestPathContinuousAtLoopPoint(t *testing.T) {
	for _, mode := range []Mode{LinearMode, CatmullRomMode} {
		t.Run(mode.String(), func(t *testing.T) {
			p := squarePath(mode)
			n := float32(p.Len())

			before := p.At(n - 1e-3)
			after := p.At(n)
			require.Less(t, before.Distance(after), float32(1e-2))
			assertVec(t, p.Points[0], after)
		})
	}
}

func TestPathLinearMidpoint(t *testing.T) {
	p := squarePath(LinearMode)
	assertVec(t, math.Vec3{X: 1, Y: 0.5}, p.At(1.5))
	// last segment blends back into the first point
	assertVec(t, math.Vec3{X: -0.5, Y: 0.25, Z: 0.5}, p.At(4.5))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "linear", LinearMode.String())
	assert.Equal(t, "catmull-rom", CatmullRomMode.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
