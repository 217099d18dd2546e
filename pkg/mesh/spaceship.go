package mesh

import "github.com/Faultbox/parashape/pkg/math"

type shipVertex struct {
	pos math.Vec3
	uv  math.Vec2
}

// Hull of the player ship: nose at -Z, tail cap at +Z, wings along ±X.
// Fuselage vertices are shared between faces so lighting is smooth; cap,
// wings and fin carry their own vertices for hard edges.
var shipVertices = [...]shipVertex{
	// fuselage, u wraps around the hull with the seam on the keel
	{math.Vec3{X: 0, Y: 0, Z: -2}, math.Vec2{X: 0.5, Y: 0}},       // 0 nose
	{math.Vec3{X: 0, Y: 0.4, Z: 0}, math.Vec2{X: 0.5, Y: 0.6}},    // 1 top
	{math.Vec3{X: 0.5, Y: 0, Z: 0}, math.Vec2{X: 0.75, Y: 0.6}},   // 2 right
	{math.Vec3{X: 0, Y: -0.3, Z: 0}, math.Vec2{X: 1, Y: 0.6}},     // 3 keel, right side
	{math.Vec3{X: 0, Y: -0.3, Z: 0}, math.Vec2{X: 0, Y: 0.6}},     // 4 keel, left side
	{math.Vec3{X: -0.5, Y: 0, Z: 0}, math.Vec2{X: 0.25, Y: 0.6}},  // 5 left
	{math.Vec3{X: 0, Y: 0.3, Z: 1.2}, math.Vec2{X: 0.5, Y: 1}},    // 6 top aft
	{math.Vec3{X: 0.35, Y: 0, Z: 1.2}, math.Vec2{X: 0.75, Y: 1}},  // 7 right aft
	{math.Vec3{X: 0, Y: -0.2, Z: 1.2}, math.Vec2{X: 1, Y: 1}},     // 8 keel aft, right side
	{math.Vec3{X: 0, Y: -0.2, Z: 1.2}, math.Vec2{X: 0, Y: 1}},     // 9 keel aft, left side
	{math.Vec3{X: -0.35, Y: 0, Z: 1.2}, math.Vec2{X: 0.25, Y: 1}}, // 10 left aft
	// engine cap, planar mapping
	{math.Vec3{X: 0, Y: 0.3, Z: 1.2}, math.Vec2{X: 0.5, Y: 0.8}},    // 11
	{math.Vec3{X: 0.35, Y: 0, Z: 1.2}, math.Vec2{X: 0.85, Y: 0.5}},  // 12
	{math.Vec3{X: 0, Y: -0.2, Z: 1.2}, math.Vec2{X: 0.5, Y: 0.3}},   // 13
	{math.Vec3{X: -0.35, Y: 0, Z: 1.2}, math.Vec2{X: 0.15, Y: 0.5}}, // 14
	// right wing, upper then lower face
	{math.Vec3{X: 0.47, Y: 0, Z: 0.3}, math.Vec2{X: 0, Y: 0}},    // 15
	{math.Vec3{X: 0.38, Y: 0, Z: 1.1}, math.Vec2{X: 0, Y: 1}},    // 16
	{math.Vec3{X: 1.6, Y: -0.05, Z: 1}, math.Vec2{X: 1, Y: 0.9}}, // 17
	{math.Vec3{X: 0.47, Y: 0, Z: 0.3}, math.Vec2{X: 0, Y: 0}},    // 18
	{math.Vec3{X: 1.6, Y: -0.05, Z: 1}, math.Vec2{X: 1, Y: 0.9}}, // 19
	{math.Vec3{X: 0.38, Y: 0, Z: 1.1}, math.Vec2{X: 0, Y: 1}},    // 20
	// left wing, upper then lower face
	{math.Vec3{X: -0.47, Y: 0, Z: 0.3}, math.Vec2{X: 0, Y: 0}},    // 21
	{math.Vec3{X: -1.6, Y: -0.05, Z: 1}, math.Vec2{X: 1, Y: 0.9}}, // 22
	{math.Vec3{X: -0.38, Y: 0, Z: 1.1}, math.Vec2{X: 0, Y: 1}},    // 23
	{math.Vec3{X: -0.47, Y: 0, Z: 0.3}, math.Vec2{X: 0, Y: 0}},    // 24
	{math.Vec3{X: -0.38, Y: 0, Z: 1.1}, math.Vec2{X: 0, Y: 1}},    // 25
	{math.Vec3{X: -1.6, Y: -0.05, Z: 1}, math.Vec2{X: 1, Y: 0.9}}, // 26
	// tail fin, right then left face
	{math.Vec3{X: 0, Y: 0.36, Z: 0.5}, math.Vec2{X: 0, Y: 0}},   // 27
	{math.Vec3{X: 0, Y: 0.9, Z: 1.25}, math.Vec2{X: 0.6, Y: 1}}, // 28
	{math.Vec3{X: 0, Y: 0.3, Z: 1.2}, math.Vec2{X: 0, Y: 1}},    // 29
	{math.Vec3{X: 0, Y: 0.36, Z: 0.5}, math.Vec2{X: 0, Y: 0}},   // 30
	{math.Vec3{X: 0, Y: 0.3, Z: 1.2}, math.Vec2{X: 0, Y: 1}},    // 31
	{math.Vec3{X: 0, Y: 0.9, Z: 1.25}, math.Vec2{X: 0.6, Y: 1}}, // 32
}

var shipTriangles = [...][3]uint32{
	// nose cone
	{0, 1, 2}, {0, 2, 3}, {0, 4, 5}, {0, 5, 1},
	// fuselage
	{1, 7, 2}, {1, 6, 7},
	{2, 8, 3}, {2, 7, 8},
	{4, 10, 5}, {4, 9, 10},
	{5, 6, 1}, {5, 10, 6},
	// engine cap
	{11, 14, 13}, {11, 13, 12},
	// wings
	{15, 16, 17}, {18, 19, 20},
	{21, 22, 23}, {24, 25, 26},
	// fin
	{27, 28, 29}, {30, 31, 32},
}

// Spaceship returns the fixed low-poly player ship. Its tangent frames are
// derived from the authored UVs by BuildTangentFrames.
func Spaceship() *Mesh {
	m := newMesh(len(shipVertices), len(shipTriangles))
	for i, v := range shipVertices {
		m.Positions[i] = v.pos
		m.TexCoords[i] = v.uv
	}
	m.Triangles = append(m.Triangles, shipTriangles[:]...)
	BuildTangentFrames(m)
	m.Bounds = ComputeBounds(m.Positions)
	return m
}
