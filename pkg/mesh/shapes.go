package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/parashape/pkg/math"
)

// Minimum split counts. A closed axis needs at least three edges to enclose
// any area; the sphere's latitude axis needs two so it reaches the equator.
const (
	MinSphereLongitudeSplits = 2
	MinSphereLatitudeSplits  = 1
	MinTorusSplits           = 2
	MinRingCircleSplits      = 2
)

// Quad returns a width×height rectangle in the y=0 plane spanning
// x ∈ [0, width] and z ∈ [0, height], facing +Y. With zero splits it is two
// triangles over four vertices; splits tessellate it into a regular grid.
func Quad(width, height float32, splitU, splitV int) (*Mesh, error) {
	if err := positive("width", width); err != nil {
		return nil, err
	}
	if err := positive("height", height); err != nil {
		return nil, err
	}
	if err := atLeast("split_u", splitU, 0); err != nil {
		return nil, err
	}
	if err := atLeast("split_v", splitV, 0); err != nil {
		return nil, err
	}
	return FromSurface(quadSurface{width: width, height: height, splitX: splitU, splitZ: splitV})
}

// quadSurface walks z along u and x along v so that +u × +v is +Y.
type quadSurface struct {
	width, height  float32
	splitX, splitZ int
}

func (q quadSurface) Axes() (Axis, Axis) {
	return OpenAxis(0, q.height, q.splitZ), OpenAxis(0, q.width, q.splitX)
}

func (q quadSurface) Eval(z, x float32) Sample {
	return Sample{
		Position: math.Vec3{X: x, Y: 0, Z: z},
		Tangent:  math.Vec3{X: 0, Y: 0, Z: 1},
		Binormal: math.Vec3{X: 1, Y: 0, Z: 0},
	}
}

func (q quadSurface) TexCoord(s, t float32) math.Vec2 {
	return math.Vec2{X: t, Y: s}
}

// Sphere returns a UV sphere centred on the origin.
//
// Longitude θ runs a full turn around Y, latitude φ runs from the south pole
// (φ=0, y=-radius) to the north pole. Normals point outward.
func Sphere(radius float32, splitLongitude, splitLatitude int) (*Mesh, error) {
	if err := positive("radius", radius); err != nil {
		return nil, err
	}
	if err := atLeast("split_longitude", splitLongitude, MinSphereLongitudeSplits); err != nil {
		return nil, err
	}
	if err := atLeast("split_latitude", splitLatitude, MinSphereLatitudeSplits); err != nil {
		return nil, err
	}
	return FromSurface(sphereSurface{radius: radius, splitLong: splitLongitude, splitLat: splitLatitude})
}

type sphereSurface struct {
	radius              float32
	splitLong, splitLat int
}

func (s sphereSurface) Axes() (Axis, Axis) {
	return AngleAxis(s.splitLong), OpenAxis(0, math32.Pi, s.splitLat)
}

// Eval returns the unit-length partials with the sin φ factor divided out of
// ∂p/∂θ, which keeps the tangent defined at the poles.
func (s sphereSurface) Eval(theta, phi float32) Sample {
	sinT, cosT := math32.Sin(theta), math32.Cos(theta)
	sinP, cosP := math32.Sin(phi), math32.Cos(phi)
	return Sample{
		Position: math.Vec3{X: s.radius * sinP * sinT, Y: -s.radius * cosP, Z: s.radius * sinP * cosT},
		Tangent:  math.Vec3{X: cosT, Y: 0, Z: -sinT},
		Binormal: math.Vec3{X: sinT * cosP, Y: sinP, Z: cosT * cosP},
	}
}

// Torus returns a torus around the Z axis: a tube of minorRadius swept along
// a circle of majorRadius in the z=0 plane.
func Torus(majorRadius, minorRadius float32, splitMajor, splitMinor int) (*Mesh, error) {
	if err := positive("major_radius", majorRadius); err != nil {
		return nil, err
	}
	if err := positive("minor_radius", minorRadius); err != nil {
		return nil, err
	}
	if minorRadius >= majorRadius {
		return nil, invalidParam("minor_radius", minorRadius, "must be smaller than major_radius")
	}
	if err := atLeast("split_major", splitMajor, MinTorusSplits); err != nil {
		return nil, err
	}
	if err := atLeast("split_minor", splitMinor, MinTorusSplits); err != nil {
		return nil, err
	}
	return FromSurface(torusSurface{major: majorRadius, minor: minorRadius, splitMajor: splitMajor, splitMinor: splitMinor})
}

type torusSurface struct {
	major, minor           float32
	splitMajor, splitMinor int
}

func (t torusSurface) Axes() (Axis, Axis) {
	return AngleAxis(t.splitMajor), AngleAxis(t.splitMinor)
}

func (t torusSurface) Eval(u, v float32) Sample {
	sinU, cosU := math32.Sin(u), math32.Cos(u)
	sinV, cosV := math32.Sin(v), math32.Cos(v)
	ring := t.major + t.minor*cosV
	return Sample{
		Position: math.Vec3{X: ring * cosU, Y: ring * sinU, Z: t.minor * sinV},
		Tangent:  math.Vec3{X: -sinU, Y: cosU, Z: 0},
		Binormal: math.Vec3{X: -sinV * cosU, Y: -sinV * sinU, Z: cosV},
	}
}

// CircleRing returns a flat annulus in the z=0 plane facing +Z, centred on
// the circle of the given radius and spreadLength wide.
func CircleRing(radius, spreadLength float32, splitCircle, splitSpread int) (*Mesh, error) {
	if err := positive("radius", radius); err != nil {
		return nil, err
	}
	if err := positive("spread_length", spreadLength); err != nil {
		return nil, err
	}
	if spreadLength >= 2*radius {
		return nil, invalidParam("spread_length", spreadLength, "must be smaller than the ring diameter")
	}
	if err := atLeast("split_circle", splitCircle, MinRingCircleSplits); err != nil {
		return nil, err
	}
	if err := atLeast("split_spread", splitSpread, 0); err != nil {
		return nil, err
	}
	return FromSurface(ringSurface{
		inner:       radius - spreadLength/2,
		spread:      spreadLength,
		splitCircle: splitCircle,
		splitSpread: splitSpread,
	})
}

// ringSurface walks the radial distance along u and the angle along v.
type ringSurface struct {
	inner, spread            float32
	splitCircle, splitSpread int
}

func (r ringSurface) Axes() (Axis, Axis) {
	return OpenAxis(r.inner, r.spread, r.splitSpread), AngleAxis(r.splitCircle)
}

func (r ringSurface) Eval(d, theta float32) Sample {
	sinT, cosT := math32.Sin(theta), math32.Cos(theta)
	return Sample{
		Position: math.Vec3{X: d * cosT, Y: d * sinT, Z: 0},
		Tangent:  math.Vec3{X: cosT, Y: sinT, Z: 0},
		Binormal: math.Vec3{X: -sinT, Y: cosT, Z: 0},
	}
}

func positive(name string, v float32) error {
	if !(v > 0) || math32.IsInf(v, 0) {
		return invalidParam(name, v, "must be positive and finite")
	}
	return nil
}

func atLeast(name string, v, minimum int) error {
	if v < minimum {
		return invalidParam(name, v, "is below the minimum split count")
	}
	return nil
}
