package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/parashape/pkg/math"
)

// uvEpsilon is the smallest UV-space determinant used as a divisor.
const uvEpsilon = 1e-8

// BuildTangentFrames fills Normals, Tangents and Binormals of m from its
// positions, texture coordinates and triangles.
//
// Each triangle adds its unnormalized face normal (so larger faces weigh
// more) and its UV-aligned tangent to its three vertices. The sums are then
// orthonormalized per vertex: N is the normalized normal sum, T is the
// tangent sum with its N component removed, and B = N × T.
func BuildTangentFrames(m *Mesh) {
	n := len(m.Positions)
	normals := make([]math.Vec3, n)
	tangents := make([]math.Vec3, n)

	for _, tri := range m.Triangles {
		p0, p1, p2 := m.Positions[tri[0]], m.Positions[tri[1]], m.Positions[tri[2]]
		uv0, uv1, uv2 := m.TexCoords[tri[0]], m.TexCoords[tri[1]], m.TexCoords[tri[2]]

		e1 := p1.Sub(p0)
		e2 := p2.Sub(p0)
		d1 := uv1.Sub(uv0)
		d2 := uv2.Sub(uv0)

		faceNormal := e1.Cross(e2)
		t := faceTangent(e1, e2, d1, d2)

		for _, vi := range tri {
			normals[vi] = normals[vi].Add(faceNormal)
			tangents[vi] = tangents[vi].Add(t)
		}
	}

	for i := 0; i < n; i++ {
		nrm := normalizeOr(normals[i], math.Vec3{X: 0, Y: 1, Z: 0})
		t := tangents[i].Sub(nrm.Scale(nrm.Dot(tangents[i])))
		if t.LengthSquared() < 1e-12 {
			t = anyPerpendicular(nrm)
		}
		t = t.Normalize()

		m.Normals[i] = nrm
		m.Tangents[i] = t
		m.Binormals[i] = nrm.Cross(t)
	}
}

// faceTangent solves e = Δu·T + Δv·B for T. A degenerate UV mapping (both
// edges parallel in UV space) would divide by zero; it falls back to a unit
// scale so the result stays finite.
func faceTangent(e1, e2 math.Vec3, d1, d2 math.Vec2) math.Vec3 {
	det := d1.Cross(d2)
	r := float32(1)
	if math32.Abs(det) >= uvEpsilon {
		r = 1 / det
	}
	return e1.Scale(d2.Y).Sub(e2.Scale(d1.Y)).Scale(r)
}

func normalizeOr(v, fallback math.Vec3) math.Vec3 {
	l := v.Length()
	if l < 1e-4 {
		return fallback
	}
	return v.Scale(1 / l)
}

// anyPerpendicular returns a vector orthogonal to unit vector n.
func anyPerpendicular(n math.Vec3) math.Vec3 {
	if math32.Abs(n.X) < 0.9 {
		return math.Vec3{X: 1}.Sub(n.Scale(n.X))
	}
	return math.Vec3{Y: 1}.Sub(n.Scale(n.Y))
}
