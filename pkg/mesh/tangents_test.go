package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/parashape/pkg/math"
)

func singleTriangle(uv0, uv1, uv2 math.Vec2) *Mesh {
	m := newMesh(3, 1)
	m.Positions[0] = math.Vec3{X: 0, Y: 0, Z: 0}
	m.Positions[1] = math.Vec3{X: 1, Y: 0, Z: 0}
	m.Positions[2] = math.Vec3{X: 0, Y: 1, Z: 0}
	m.TexCoords[0], m.TexCoords[1], m.TexCoords[2] = uv0, uv1, uv2
	m.Triangles = append(m.Triangles, [3]uint32{0, 1, 2})
	return m
}

func TestBuildTangentFramesFollowsUV(t *testing.T) {
	m := singleTriangle(math.Vec2{X: 0, Y: 0}, math.Vec2{X: 1, Y: 0}, math.Vec2{X: 0, Y: 1})
	BuildTangentFrames(m)
	require.NoError(t, Validate(m))

	for i := range m.Positions {
		assert.InDelta(t, 1, m.Normals[i].Z, eps)
		assert.InDelta(t, 1, m.Tangents[i].X, eps)
		assert.InDelta(t, 1, m.Binormals[i].Y, eps)
	}
}

func TestBuildTangentFramesDegenerateUV(t *testing.T) {
	tests := []struct {
		name          string
		uv0, uv1, uv2 math.Vec2
	}{
		{"all equal", math.Vec2{X: 0.5, Y: 0.5}, math.Vec2{X: 0.5, Y: 0.5}, math.Vec2{X: 0.5, Y: 0.5}},
		{"collinear", math.Vec2{}, math.Vec2{X: 1, Y: 1}, math.Vec2{X: 2, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := singleTriangle(tt.uv0, tt.uv1, tt.uv2)
			BuildTangentFrames(m)
			assert.NoError(t, Validate(m))
		})
	}
}

func TestBuildTangentFramesDegenerateTriangle(t *testing.T) {
	m := newMesh(3, 1)
	m.Triangles = append(m.Triangles, [3]uint32{0, 1, 2})
	BuildTangentFrames(m)

	require.NoError(t, Validate(m))
	assert.Equal(t, math.Vec3{X: 0, Y: 1, Z: 0}, m.Normals[0])
}

func TestSpaceship(t *testing.T) {
	m := Spaceship()
	require.NoError(t, Validate(m))

	assert.Equal(t, 33, m.VertexCount())
	assert.Equal(t, 20, m.TriangleCount())
	assert.Less(t, m.Bounds.Min.Z, float32(0), "nose points toward -Z")
	assert.InDelta(t, -m.Bounds.Min.X, m.Bounds.Max.X, eps, "hull is mirror symmetric")

	for i, uv := range m.TexCoords {
		assert.True(t, uv.X >= 0 && uv.X <= 1 && uv.Y >= 0 && uv.Y <= 1, "texcoord %d = %v", i, uv)
	}

	again := Spaceship()
	assert.Equal(t, m.Positions, again.Positions)
	assert.Equal(t, m.Tangents, again.Tangents)
}
