package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/parashape/pkg/interp"
	"github.com/Faultbox/parashape/pkg/math"
)

func testPath() interp.Path {
	return interp.NewPath([]math.Vec3{
		{X: 0}, {X: 1}, {X: 1, Y: 1}, {Y: 1},
	})
}

func TestStepAdvances(t *testing.T) {
	d := NewDriver(testPath())
	d.Speed = 2

	s, pos := d.Step(State{}, 250*time.Millisecond)
	assert.InDelta(t, 0.5, s.Elapsed, 1e-6)
	assert.Equal(t, d.Path.At(0.5), pos)
}

func TestStepDisabledFreezesElapsed(t *testing.T) {
	d := NewDriver(testPath())
	d.Enabled = false

	start := State{Elapsed: 1.25}
	s, pos := d.Step(start, time.Second)
	assert.Equal(t, start, s)
	assert.Equal(t, d.Path.At(1.25), pos)
}

func TestStepIsPure(t *testing.T) {
	d := NewDriver(testPath())
	start := State{Elapsed: 0.5}

	a, pa := d.Step(start, 100*time.Millisecond)
	b, pb := d.Step(start, 100*time.Millisecond)
	assert.Equal(t, a, b)
	assert.Equal(t, pa, pb)
	assert.Equal(t, float32(0.5), start.Elapsed)
}

func TestStepWrapsElapsed(t *testing.T) {
	d := NewDriver(testPath())

	s, pos := d.Step(State{Elapsed: 3.5}, time.Second)
	assert.InDelta(t, 0.5, s.Elapsed, 1e-6)
	assert.InDelta(t, d.Path.At(4.5).X, pos.X, 1e-5)

	d.Speed = -1
	s, _ = d.Step(State{Elapsed: 0.25}, time.Second)
	assert.InDelta(t, 3.25, s.Elapsed, 1e-6)
}

func TestToggleMode(t *testing.T) {
	d := NewDriver(testPath())
	assert.Equal(t, interp.LinearMode, d.ToggleMode())
	assert.Equal(t, interp.CatmullRomMode, d.ToggleMode())

	short := NewDriver(interp.Path{Points: []math.Vec3{{}, {X: 1}}, Mode: interp.LinearMode})
	assert.Equal(t, interp.LinearMode, short.ToggleMode(), "two points cannot form a Catmull-Rom path")
}

func TestAdjustTensionClamps(t *testing.T) {
	d := NewDriver(testPath())

	tests := []struct {
		delta float32
		want  float32
	}{
		{0.1, 0.6},
		{1, 1},
		{-0.3, 0.7},
		{-5, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, d.AdjustTension(tt.delta), 1e-6)
	}
}
