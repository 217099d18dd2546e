// Package interp evaluates positions along cyclic control paths.
package interp

import "github.com/Faultbox/parashape/pkg/math"

// DefaultTension is the Catmull-Rom tension used when a path leaves it unset.
const DefaultTension = 0.5

// Lerp returns (1-x)*p0 + x*p1. x is not clamped.
func Lerp(p0, p1 math.Vec3, x float32) math.Vec3 {
	return p0.Lerp(p1, x)
}

// CatmullRom evaluates the cardinal spline segment between p1 and p2 with
// tension t at x in [0,1]:
//
//	q(x) = [1 x x² x³] · M(t) · [p0 p1 p2 p3]ᵀ
//
//	M(t) = |  0    1     0     0 |
//	       | -t    0     t     0 |
//	       | 2t  t-3  3-2t    -t |
//	       | -t  2-t   t-2     t |
//
// q(0) = p1 and q(1) = p2 for every t.
func CatmullRom(p0, p1, p2, p3 math.Vec3, t, x float32) math.Vec3 {
	w0, w1, w2, w3 := catmullRomWeights(t, x)
	return p0.Scale(w0).Add(p1.Scale(w1)).Add(p2.Scale(w2)).Add(p3.Scale(w3))
}

// catmullRomWeights returns [1 x x² x³]·M(t), the weight of each control
// point.
func catmullRomWeights(t, x float32) (w0, w1, w2, w3 float32) {
	x2 := x * x
	x3 := x2 * x
	w0 = -t*x + 2*t*x2 - t*x3
	w1 = 1 + (t-3)*x2 + (2-t)*x3
	w2 = t*x + (3-2*t)*x2 + (t-2)*x3
	w3 = -t*x2 + t*x3
	return w0, w1, w2, w3
}
