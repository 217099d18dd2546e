package mesh

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/parashape/pkg/math"
)

const eps = 1e-4

// mustMesh returns a checker for a generator's results, so calls read
// mustMesh(t)(Sphere(1, 8, 6)).
func mustMesh(t *testing.T) func(*Mesh, error) *Mesh {
	t.Helper()
	return func(m *Mesh, err error) *Mesh {
		t.Helper()
		require.NoError(t, err)
		require.NotNil(t, m)
		return m
	}
}

func TestGeneratedMeshesAreValid(t *testing.T) {
	tests := []struct {
		name string
		gen  func() (*Mesh, error)
	}{
		{"quad", func() (*Mesh, error) { return Quad(2, 3, 0, 0) }},
		{"quad split", func() (*Mesh, error) { return Quad(2, 3, 4, 7) }},
		{"sphere", func() (*Mesh, error) { return Sphere(1, 10, 10) }},
		{"sphere coarse", func() (*Mesh, error) { return Sphere(2.5, MinSphereLongitudeSplits, MinSphereLatitudeSplits) }},
		{"torus", func() (*Mesh, error) { return Torus(2, 0.5, 40, 20) }},
		{"circle ring", func() (*Mesh, error) { return CircleRing(0.5, 0.05, 40, 4) }},
		{"spaceship", func() (*Mesh, error) { return Spaceship(), nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMesh(t)(tt.gen())
			assert.NoError(t, Validate(m))
		})
	}
}

func TestQuadWithoutSplits(t *testing.T) {
	m := mustMesh(t)(Quad(2, 3, 0, 0))

	assert.Len(t, m.Positions, 4)
	assert.Len(t, m.Triangles, 2)
	for i, n := range m.Normals {
		assert.Equal(t, math.Vec3{X: 0, Y: 1, Z: 0}, n, "normal %d", i)
	}
	assert.Equal(t, Bounds{Min: math.Vec3{}, Max: math.Vec3{X: 2, Y: 0, Z: 3}}, m.Bounds)
}

func TestQuadSplitsAndTexCoords(t *testing.T) {
	m := mustMesh(t)(Quad(4, 2, 3, 1))

	assert.Equal(t, (3+2)*(1+2), m.VertexCount())
	assert.Equal(t, 2*(3+1)*(1+1), m.TriangleCount())

	for i, p := range m.Positions {
		uv := m.TexCoords[i]
		assert.InDelta(t, p.X/4, uv.X, eps, "u of vertex %d", i)
		assert.InDelta(t, p.Z/2, uv.Y, eps, "v of vertex %d", i)
	}
}

func TestSpherePositionsLieOnRadius(t *testing.T) {
	for _, r := range []float32{0.1, 1, 2.5} {
		m := mustMesh(t)(Sphere(r, 16, 12))
		assert.Equal(t, (16+2)*(12+2), m.VertexCount())
		for i, p := range m.Positions {
			assert.InDelta(t, r, p.Length(), eps*float64(max(r, 1)), "vertex %d", i)
			// outward: the normal is the radial direction
			assert.InDelta(t, 1, m.Normals[i].Dot(p.Scale(1/r)), eps, "normal %d", i)
		}
	}
}

func TestSphereSeamRowsCoincide(t *testing.T) {
	m := mustMesh(t)(Sphere(1, 8, 6))
	rows := 6 + 2
	last := (8 + 1) * rows
	for j := 0; j < rows; j++ {
		assert.Equal(t, m.Positions[j], m.Positions[last+j], "row %d", j)
		assert.Equal(t, float32(0), m.TexCoords[j].X)
		assert.Equal(t, float32(1), m.TexCoords[last+j].X)
	}
}

func TestTorusDistanceFromCentralRing(t *testing.T) {
	const major, minor = 2, 0.5
	m := mustMesh(t)(Torus(major, minor, 30, 18))

	for i, p := range m.Positions {
		radial := math.Vec3{X: p.X, Y: p.Y}.Normalize().Scale(major)
		assert.InDelta(t, minor, p.Distance(radial), eps, "vertex %d", i)

		// normals point away from the tube centre
		outward := p.Sub(radial).Normalize()
		assert.InDelta(t, 1, m.Normals[i].Dot(outward), eps, "normal %d", i)
	}
}

func TestCircleRingCounts(t *testing.T) {
	m := mustMesh(t)(CircleRing(0.5, 0.05, 40, 4))

	assert.Equal(t, (40+2)*(4+2), m.VertexCount())
	assert.Equal(t, 2*41*5*3, m.IndexCount())

	for i, p := range m.Positions {
		d := p.Length()
		assert.GreaterOrEqual(t, d, float32(0.475-eps), "vertex %d", i)
		assert.LessOrEqual(t, d, float32(0.525+eps), "vertex %d", i)
		assert.Equal(t, float32(0), p.Z)
		assert.InDelta(t, 1, m.Normals[i].Z, eps)
	}
}

func TestWindingFollowsNormals(t *testing.T) {
	meshes := map[string]func() (*Mesh, error){
		"quad":   func() (*Mesh, error) { return Quad(1, 1, 3, 3) },
		"sphere": func() (*Mesh, error) { return Sphere(1, 12, 9) },
		"torus":  func() (*Mesh, error) { return Torus(3, 1, 16, 12) },
		"ring":   func() (*Mesh, error) { return CircleRing(1, 0.4, 12, 2) },
	}

	for name, gen := range meshes {
		t.Run(name, func(t *testing.T) {
			m := mustMesh(t)(gen())
			for i, tri := range m.Triangles {
				a, b, c := m.Positions[tri[0]], m.Positions[tri[1]], m.Positions[tri[2]]
				face := b.Sub(a).Cross(c.Sub(a))
				if face.Length() < 1e-7 {
					continue // collapsed pole triangle
				}
				avg := m.Normals[tri[0]].Add(m.Normals[tri[1]]).Add(m.Normals[tri[2]])
				assert.Greater(t, face.Dot(avg), float32(0), "triangle %d winds against its normals", i)
			}
		})
	}
}

func TestInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		gen  func() (*Mesh, error)
	}{
		{"negative sphere radius", func() (*Mesh, error) { return Sphere(-1, 10, 10) }},
		{"zero sphere radius", func() (*Mesh, error) { return Sphere(0, 10, 10) }},
		{"NaN sphere radius", func() (*Mesh, error) { return Sphere(math32.NaN(), 10, 10) }},
		{"sphere longitude splits", func() (*Mesh, error) { return Sphere(1, 1, 10) }},
		{"sphere latitude splits", func() (*Mesh, error) { return Sphere(1, 10, 0) }},
		{"quad width", func() (*Mesh, error) { return Quad(0, 1, 0, 0) }},
		{"quad infinite height", func() (*Mesh, error) { return Quad(1, math32.Inf(1), 0, 0) }},
		{"quad negative split", func() (*Mesh, error) { return Quad(1, 1, -1, 0) }},
		{"torus inverted radii", func() (*Mesh, error) { return Torus(0.5, 2, 10, 10) }},
		{"torus splits", func() (*Mesh, error) { return Torus(2, 0.5, 1, 10) }},
		{"torus minor radius", func() (*Mesh, error) { return Torus(2, 0, 10, 10) }},
		{"ring too wide", func() (*Mesh, error) { return CircleRing(0.5, 1, 40, 4) }},
		{"ring splits", func() (*Mesh, error) { return CircleRing(0.5, 0.05, 1, 4) }},
		{"ring negative spread split", func() (*Mesh, error) { return CircleRing(0.5, 0.05, 40, -1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.gen()
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, ErrInvalidParameter), "got %v", err)
		})
	}
}

func TestGeneratorCallsDoNotAlias(t *testing.T) {
	a := mustMesh(t)(Sphere(1, 4, 4))
	b := mustMesh(t)(Sphere(1, 4, 4))
	require.Equal(t, a.Positions, b.Positions)

	a.Positions[0] = math.Vec3{X: 42}
	assert.NotEqual(t, a.Positions[0], b.Positions[0])
}

type skewSurface struct{}

func (skewSurface) Axes() (Axis, Axis) { return OpenAxis(0, 1, 2), OpenAxis(0, 1, 2) }

func (skewSurface) Eval(u, v float32) Sample {
	return Sample{
		Position: math.Vec3{X: u + 0.5*v, Y: v},
		Tangent:  math.Vec3{X: 1},
		Binormal: math.Vec3{X: 0.5, Y: 1},
	}
}

func TestFromSurfaceOrthonormalizesSkewedFrames(t *testing.T) {
	m := mustMesh(t)(FromSurface(skewSurface{}))
	require.NoError(t, Validate(m))
	for _, n := range m.Normals {
		assert.InDelta(t, 1, n.Z, eps)
	}
	assert.Equal(t, math.Vec2{X: 1, Y: 1}, m.TexCoords[len(m.TexCoords)-1])
}

type badAxisSurface struct{ skewSurface }

func (badAxisSurface) Axes() (Axis, Axis) { return OpenAxis(0, 0, 2), OpenAxis(0, 1, 2) }

func TestFromSurfaceRejectsEmptyAxis(t *testing.T) {
	_, err := FromSurface(badAxisSurface{})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestComputeBounds(t *testing.T) {
	assert.Equal(t, Bounds{}, ComputeBounds(nil))

	b := ComputeBounds([]math.Vec3{{X: 1, Y: -2, Z: 3}, {X: -1, Y: 4, Z: 0}})
	assert.Equal(t, math.Vec3{X: -1, Y: -2, Z: 0}, b.Min)
	assert.Equal(t, math.Vec3{X: 1, Y: 4, Z: 3}, b.Max)
	assert.Equal(t, math.Vec3{X: 0, Y: 1, Z: 1.5}, b.Center())
}

func TestValidateCatchesBrokenMeshes(t *testing.T) {
	good := func() *Mesh { return mustMesh(t)(Quad(1, 1, 0, 0)) }

	tests := []struct {
		name   string
		mutate func(m *Mesh)
	}{
		{"short normals", func(m *Mesh) { m.Normals = m.Normals[:2] }},
		{"index out of range", func(m *Mesh) { m.Triangles[1][2] = 99 }},
		{"non-unit tangent", func(m *Mesh) { m.Tangents[0] = m.Tangents[0].Scale(2) }},
		{"skewed binormal", func(m *Mesh) { m.Binormals[3] = math.Vec3{Z: 1} }},
		{"NaN position", func(m *Mesh) { m.Positions[0].X = math32.NaN() }},
		{"no triangles", func(m *Mesh) { m.Triangles = nil }},
	}

	require.NoError(t, Validate(good()))
	assert.ErrorIs(t, Validate(nil), ErrInvalidMesh)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := good()
			tt.mutate(m)
			assert.ErrorIs(t, Validate(m), ErrInvalidMesh)
		})
	}
}
