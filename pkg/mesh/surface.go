package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/parashape/pkg/math"
)

// Axis describes how one parametric coordinate is sampled.
//
// A split count of N cuts the axis into N+1 edges and yields N+2 sample
// rows, both end points included. On a closed axis the last row maps to
// the same point as the first; it is kept as a separate vertex so the
// texture coordinate can reach 1 across the seam.
type Axis struct {
	Start  float32
	Extent float32
	Splits int
	Closed bool
}

// OpenAxis returns an axis sampling [start, start+extent].
func OpenAxis(start, extent float32, splits int) Axis {
	return Axis{Start: start, Extent: extent, Splits: splits}
}

// AngleAxis returns a closed axis over a full turn.
func AngleAxis(splits int) Axis {
	return Axis{Extent: 2 * math32.Pi, Splits: splits, Closed: true}
}

// Rows returns the number of sample rows along the axis.
func (a Axis) Rows() int {
	return a.Splits + 2
}

// Edges returns the number of cells along the axis.
func (a Axis) Edges() int {
	return a.Splits + 1
}

// param returns the parameter value and the [0,1] fraction of row k.
func (a Axis) param(k int) (value, fraction float32) {
	fraction = float32(k) / float32(a.Edges())
	if a.Closed && k == a.Edges() {
		return a.Start, 1
	}
	return a.Start + a.Extent*fraction, fraction
}

// Sample is a surface evaluation at one (u, v) parameter pair.
// Tangent points along +u and Binormal along +v. Neither needs to be
// normalized.
type Sample struct {
	Position math.Vec3
	Tangent  math.Vec3
	Binormal math.Vec3
}

// Surface is a closed-form parametric surface.
type Surface interface {
	// Axes returns the u and v sampling axes.
	Axes() (u, v Axis)
	// Eval evaluates the surface at parameter values u and v.
	Eval(u, v float32) Sample
}

// TexCoordMapper is implemented by surfaces whose texture coordinates are
// not simply the (u, v) fractions.
type TexCoordMapper interface {
	TexCoord(s, t float32) math.Vec2
}

// FromSurface samples a surface over its parameter grid and triangulates it.
//
// The normal at every vertex is normalize(Tangent × Binormal) and the stored
// binormal is re-derived as Normal × Tangent, so the basis is orthonormal and
// right-handed even for non-orthogonal parameterizations.
func FromSurface(s Surface) (*Mesh, error) {
	u, v := s.Axes()
	if err := checkAxis("u", u); err != nil {
		return nil, err
	}
	if err := checkAxis("v", v); err != nil {
		return nil, err
	}

	nu, nv := u.Rows(), v.Rows()
	m := newMesh(nu*nv, 2*u.Edges()*v.Edges())
	mapper, hasMapper := s.(TexCoordMapper)

	idx := 0
	for i := 0; i < nu; i++ {
		pu, fs := u.param(i)
		for j := 0; j < nv; j++ {
			pv, ft := v.param(j)
			sm := s.Eval(pu, pv)

			t := sm.Tangent.Normalize()
			n := t.Cross(sm.Binormal).Normalize()

			m.Positions[idx] = sm.Position
			m.Tangents[idx] = t
			m.Normals[idx] = n
			m.Binormals[idx] = n.Cross(t)
			if hasMapper {
				m.TexCoords[idx] = mapper.TexCoord(fs, ft)
			} else {
				m.TexCoords[idx] = math.Vec2{X: fs, Y: ft}
			}
			idx++
		}
	}

	// Each cell splits along the (i, j)-(i+1, j+1) diagonal. Stepping +u
	// then +v turns counter-clockwise around Tangent × Binormal.
	for i := 0; i < nu-1; i++ {
		for j := 0; j < nv-1; j++ {
			a := uint32(i*nv + j)
			au := a + uint32(nv)
			m.Triangles = append(m.Triangles,
				[3]uint32{a, au, au + 1},
				[3]uint32{a, au + 1, a + 1},
			)
		}
	}

	m.Bounds = ComputeBounds(m.Positions)
	return m, nil
}

func checkAxis(name string, a Axis) error {
	if a.Splits < 0 {
		return invalidParam(name+".splits", a.Splits, "must not be negative")
	}
	if !(a.Extent > 0) || math32.IsInf(a.Extent, 0) {
		return invalidParam(name+".extent", a.Extent, "must be positive and finite")
	}
	return nil
}
