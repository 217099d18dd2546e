// Package mesh generates renderable triangle meshes from closed-form
// parametric surfaces and from hand-authored vertex data.
//
// Every generator returns a fresh, immutable *Mesh whose attribute slices
// are index-aligned: attribute i describes vertex i. Triangles wind
// counter-clockwise when seen from the side the normals point to.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/parashape/pkg/math"
)

var (
	// ErrInvalidParameter is returned when a generator is called with a
	// non-positive size or a split count below the shape's minimum.
	ErrInvalidParameter = errors.New("invalid mesh parameter")

	// ErrInvalidMesh is returned by Validate when a mesh breaks one of the
	// attribute invariants.
	ErrInvalidMesh = errors.New("invalid mesh")
)

// Mesh holds vertex attributes and triangle indices ready for GPU upload.
type Mesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	Tangents  []math.Vec3
	Binormals []math.Vec3
	TexCoords []math.Vec2
	Triangles [][3]uint32
	Bounds    Bounds
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Radius returns half the diagonal, the radius of the enclosing sphere
// around Center.
func (b Bounds) Radius() float32 {
	return b.Size().Length() / 2
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// IndexCount returns the number of indices a draw call consumes.
func (m *Mesh) IndexCount() int {
	return 3 * len(m.Triangles)
}

// ComputeBounds returns the bounding box of a set of points.
// An empty set yields the zero box.
func ComputeBounds(points []math.Vec3) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// newMesh allocates a mesh with n vertices and room for the given number of
// triangles.
func newMesh(n, triangles int) *Mesh {
	return &Mesh{
		Positions: make([]math.Vec3, n),
		Normals:   make([]math.Vec3, n),
		Tangents:  make([]math.Vec3, n),
		Binormals: make([]math.Vec3, n),
		TexCoords: make([]math.Vec2, n),
		Triangles: make([][3]uint32, 0, triangles),
	}
}

func invalidParam(name string, value any, reason string) error {
	return fmt.Errorf("%w: %s=%v %s", ErrInvalidParameter, name, value, reason)
}
