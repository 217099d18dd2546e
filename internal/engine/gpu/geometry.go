// Package gpu uploads meshes into OpenGL buffers.
package gpu

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/parashape/internal/logger"
	"github.com/Faultbox/parashape/pkg/mesh"
)

// ErrEmptyMesh is returned by Upload for a nil mesh or one without triangles.
var ErrEmptyMesh = errors.New("gpu: empty mesh")

// Geometry is a mesh resident on the GPU: one vertex array, one blocked
// vertex buffer and one element buffer.
type Geometry struct {
	vao uint32
	vbo uint32
	ebo uint32

	indexCount int32
	layout     mesh.Layout
}

// Upload packs m and copies it into new GPU buffers. Attribute locations
// follow mesh.Attribute. A current GL context is required.
func Upload(m *mesh.Mesh) (*Geometry, error) {
	if m == nil || m.VertexCount() == 0 || m.TriangleCount() == 0 {
		return nil, ErrEmptyMesh
	}
	data, layout := mesh.Pack(m)
	indices := mesh.PackIndices(m)

	g := &Geometry{indexCount: int32(len(indices)), layout: layout}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, layout.Size, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	for _, b := range layout.Blocks {
		loc := uint32(b.Attribute)
		gl.VertexAttribPointerWithOffset(loc, int32(b.Components), gl.FLOAT, false, 0, uintptr(b.Offset))
		gl.EnableVertexAttribArray(loc)
	}

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	// the element binding is VAO state; unbind the VAO first
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		g.Destroy()
		return nil, fmt.Errorf("gpu: upload failed with GL error 0x%x", code)
	}

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", g.vao),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("indices", len(indices)),
		zap.Int("bytes", layout.Size),
	)
	return g, nil
}

// IndexCount returns the number of indices drawn per Draw.
func (g *Geometry) IndexCount() int {
	return int(g.indexCount)
}

// Layout returns the vertex buffer layout.
func (g *Geometry) Layout() mesh.Layout {
	return g.layout
}

// Draw issues one indexed triangle draw with whatever program is bound.
func (g *Geometry) Draw() {
	if g.vao == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Destroy releases all buffers.
func (g *Geometry) Destroy() {
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
		g.ebo = 0
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}
