// Package scene draws nodes with the shape program.
package scene

import (
	"fmt"

	"github.com/Faultbox/parashape/internal/engine/pipeline"
	"github.com/Faultbox/parashape/internal/engine/shader"
	"github.com/Faultbox/parashape/pkg/math"
)

// ShadingMode selects what the shape program outputs.
type ShadingMode int32

// Shading modes in the order of the viewer's number keys.
const (
	ShadingFallback ShadingMode = iota
	ShadingDiffuse
	ShadingNormal
	ShadingTangent
	ShadingBinormal
	ShadingTexCoords

	shadingModeCount
)

func (m ShadingMode) String() string {
	switch m {
	case ShadingFallback:
		return "fallback"
	case ShadingDiffuse:
		return "diffuse"
	case ShadingNormal:
		return "normal"
	case ShadingTangent:
		return "tangent"
	case ShadingBinormal:
		return "binormal"
	case ShadingTexCoords:
		return "texcoords"
	default:
		return fmt.Sprintf("ShadingMode(%d)", int32(m))
	}
}

// ShadingModeFromIndex maps 0-based key indices to modes.
func ShadingModeFromIndex(i int) (ShadingMode, bool) {
	if i < 0 || i >= int(shadingModeCount) {
		return 0, false
	}
	return ShadingMode(i), true
}

// Scene is an ordered list of nodes drawn with one program.
type Scene struct {
	Program  *shader.Program
	Mode     ShadingMode
	LightPos math.Vec3

	// Polygon is the scene-wide rasterization mode. Wireframe nodes draw
	// with lines while it is PolygonFill.
	Polygon pipeline.PolygonMode

	// ApplyPolygonMode sets the GL polygon mode before each node. Nil
	// leaves the GL state alone.
	ApplyPolygonMode func(pipeline.PolygonMode)

	nodes []*Node
}

// New creates an empty scene.
func New(program *shader.Program) *Scene {
	return &Scene{
		Program:  program,
		Mode:     ShadingDiffuse,
		LightPos: math.Vec3{X: -2, Y: 4, Z: 2},
	}
}

// Add appends nodes.
func (s *Scene) Add(nodes ...*Node) {
	s.nodes = append(s.nodes, nodes...)
}

// Nodes returns the nodes in draw order.
func (s *Scene) Nodes() []*Node {
	return s.nodes
}

// Find returns the node with the given name.
func (s *Scene) Find(name string) *Node {
	for _, n := range s.nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// Render draws every visible node.
func (s *Scene) Render(viewProj math.Mat4) {
	p := s.Program
	p.Use()
	p.SetMat4("uViewProj", viewProj)
	p.SetVec3("uLightPos", s.LightPos)
	p.SetInt("uMode", int32(s.Mode))

	for _, n := range s.nodes {
		if !n.Visible || n.Geometry == nil {
			continue
		}
		p.SetMat4("uModel", n.Model())
		p.SetVec3("uColor", n.Color)
		if s.ApplyPolygonMode != nil {
			s.ApplyPolygonMode(s.Polygon.WithWireframe(n.Wireframe))
		}
		n.Geometry.Draw()
	}
	if s.ApplyPolygonMode != nil {
		s.ApplyPolygonMode(s.Polygon)
	}
}
