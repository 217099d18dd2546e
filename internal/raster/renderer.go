// Package raster renders meshes to images on the CPU, for previews where no
// GL context exists.
package raster

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"

	"github.com/Faultbox/parashape/pkg/math"
	"github.com/Faultbox/parashape/pkg/mesh"
)

// Options controls a render.
type Options struct {
	Size    int // square output edge in pixels
	Margin  int // empty border in pixels
	Shading Shading
	Yaw     float32 // radians around Y, applied first
	Pitch   float32 // radians around X; positive looks down on the mesh
	Light   Light
}

// DefaultOptions returns a three-quarter diffuse view.
func DefaultOptions(size int) Options {
	return Options{
		Size:    size,
		Margin:  max(size/32, 1),
		Shading: ShadeDiffuse,
		Yaw:     0.6,
		Pitch:   0.35,
		Light:   DefaultLight(),
	}
}

// projected holds per-vertex screen data for one render.
type projected struct {
	x, y, z []float32
	normals []math.Vec3 // view space
}

// Render draws m with an orthographic camera looking down -Z after the
// yaw/pitch rotation. The mesh's bounding sphere is fitted to the image.
// Pixels not covered by the mesh stay fully transparent.
func Render(m *mesh.Mesh, opts Options) (*image.NRGBA, error) {
	if err := checkMesh(m); err != nil {
		return nil, err
	}
	if opts.Size <= 0 {
		return nil, fmt.Errorf("raster: size %d must be positive", opts.Size)
	}

	fb := NewFrameBuffer(opts.Size, opts.Size)
	radius := m.Bounds.Radius()
	if radius <= 0 {
		return fb.Image(), nil
	}

	rot := math.RotateX(opts.Pitch).Mul(math.RotateY(opts.Yaw))
	center := m.Bounds.Center()
	half := float32(opts.Size) / 2
	scale := max(half-float32(opts.Margin), 1) / radius

	n := m.VertexCount()
	pv := projected{
		x:       make([]float32, n),
		y:       make([]float32, n),
		z:       make([]float32, n),
		normals: make([]math.Vec3, n),
	}
	for i, p := range m.Positions {
		v := rot.TransformDirection(p.Sub(center))
		pv.x[i] = half + v.X*scale
		pv.y[i] = half - v.Y*scale // image rows grow downward
		pv.z[i] = v.Z
		pv.normals[i] = rot.TransformDirection(m.Normals[i])
	}

	light := opts.Light
	for _, tri := range m.Triangles {
		rasterizeTriangle(fb, m, &pv, tri, opts.Shading, &light)
	}
	return fb.Image(), nil
}

func checkMesh(m *mesh.Mesh) error {
	if m == nil || m.VertexCount() == 0 {
		return fmt.Errorf("raster: %w: empty", mesh.ErrInvalidMesh)
	}
	n := m.VertexCount()
	if len(m.Normals) != n || len(m.Tangents) != n || len(m.Binormals) != n || len(m.TexCoords) != n {
		return fmt.Errorf("raster: %w: attribute lengths differ", mesh.ErrInvalidMesh)
	}
	for _, tri := range m.Triangles {
		for _, idx := range tri {
			if int(idx) >= n {
				return fmt.Errorf("raster: %w: index %d out of range", mesh.ErrInvalidMesh, idx)
			}
		}
	}
	return nil
}

func floorInt(v float32) int {
	return int(math32.Floor(v))
}
