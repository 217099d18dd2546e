package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/parashape/pkg/math"
)

const eps = 1e-5

func assertVec(t *testing.T, want, got math.Vec3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, eps, msgAndArgs...)
}

var (
	p0 = math.Vec3{X: -1, Y: 0, Z: 2}
	p1 = math.Vec3{X: 0, Y: 1, Z: 0}
	p2 = math.Vec3{X: 2, Y: 1, Z: -1}
	p3 = math.Vec3{X: 3, Y: -2, Z: 0}
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want math.Vec3
	}{
		{"start", 0, p1},
		{"end", 1, p2},
		{"middle", 0.5, math.Vec3{X: 1, Y: 1, Z: -0.5}},
		{"extrapolate", 2, math.Vec3{X: 4, Y: 1, Z: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, Lerp(p1, p2, tt.x))
		})
	}
}

func TestCatmullRomEndpoints(t *testing.T) {
	for _, tension := range []float32{0, 0.25, 0.5, 1, 2} {
		assertVec(t, p1, CatmullRom(p0, p1, p2, p3, tension, 0), "tension %v at 0", tension)
		assertVec(t, p2, CatmullRom(p0, p1, p2, p3, tension, 1), "tension %v at 1", tension)
	}
}

func TestCatmullRomWeightsSumToOne(t *testing.T) {
	for _, tension := range []float32{0, 0.5, 1} {
		for x := float32(0); x <= 1; x += 0.125 {
			w0, w1, w2, w3 := catmullRomWeights(tension, x)
			assert.InDelta(t, 1, w0+w1+w2+w3, eps)
		}
	}
}

func TestCatmullRomCollinearIsStraight(t *testing.T) {
	a := math.Vec3{X: 0}
	b := math.Vec3{X: 1}
	c := math.Vec3{X: 2}
	d := math.Vec3{X: 3}

	// evenly spaced collinear points with tension 0.5 reproduce the line
	for _, x := range []float32{0.1, 0.5, 0.9} {
		assertVec(t, math.Vec3{X: 1 + x}, CatmullRom(a, b, c, d, 0.5, x))
	}
}

func TestCatmullRomZeroTensionIgnoresNeighbours(t *testing.T) {
	far := math.Vec3{X: 100, Y: 100, Z: 100}
	assertVec(t,
		CatmullRom(p0, p1, p2, p3, 0, 0.3),
		CatmullRom(far, p1, p2, far.Neg(), 0, 0.3))
}
