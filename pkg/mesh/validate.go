package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Tolerance is the slack Validate allows on unit lengths and orthogonality.
const Tolerance = 1e-4

// Validate checks the invariants every generated mesh upholds: index-aligned
// attributes, in-range indices, finite values and an orthonormal
// {tangent, binormal, normal} frame at every vertex.
func Validate(m *Mesh) error {
	if m == nil {
		return fmt.Errorf("%w: nil mesh", ErrInvalidMesh)
	}
	n := len(m.Positions)
	if n == 0 || len(m.Triangles) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidMesh)
	}
	if len(m.Normals) != n || len(m.Tangents) != n || len(m.Binormals) != n || len(m.TexCoords) != n {
		return fmt.Errorf("%w: attribute lengths differ (positions=%d normals=%d tangents=%d binormals=%d texcoords=%d)",
			ErrInvalidMesh, n, len(m.Normals), len(m.Tangents), len(m.Binormals), len(m.TexCoords))
	}

	for i, tri := range m.Triangles {
		for _, idx := range tri {
			if int(idx) >= n {
				return fmt.Errorf("%w: triangle %d index %d out of range", ErrInvalidMesh, i, idx)
			}
		}
	}

	for i := 0; i < n; i++ {
		p, nrm, t, b := m.Positions[i], m.Normals[i], m.Tangents[i], m.Binormals[i]
		if !p.IsFinite() || !nrm.IsFinite() || !t.IsFinite() || !b.IsFinite() {
			return fmt.Errorf("%w: vertex %d has non-finite attributes", ErrInvalidMesh, i)
		}
		if err := checkUnit(i, "normal", nrm.Length()); err != nil {
			return err
		}
		if err := checkUnit(i, "tangent", t.Length()); err != nil {
			return err
		}
		if err := checkUnit(i, "binormal", b.Length()); err != nil {
			return err
		}
		if d := t.Dot(b); math32.Abs(d) > Tolerance {
			return fmt.Errorf("%w: vertex %d tangent·binormal = %v", ErrInvalidMesh, i, d)
		}
		if d := t.Dot(nrm); math32.Abs(d) > Tolerance {
			return fmt.Errorf("%w: vertex %d tangent·normal = %v", ErrInvalidMesh, i, d)
		}
		if d := b.Dot(nrm); math32.Abs(d) > Tolerance {
			return fmt.Errorf("%w: vertex %d binormal·normal = %v", ErrInvalidMesh, i, d)
		}
	}
	return nil
}

func checkUnit(vertex int, name string, length float32) error {
	if math32.Abs(length-1) > Tolerance {
		return fmt.Errorf("%w: vertex %d %s length %v", ErrInvalidMesh, vertex, name, length)
	}
	return nil
}
