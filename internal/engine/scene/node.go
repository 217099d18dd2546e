package scene

import (
	"github.com/Faultbox/parashape/pkg/math"
)

// Drawable is anything that can issue its own draw call, usually a
// *gpu.Geometry.
type Drawable interface {
	Draw()
}

// Node places a drawable in the world.
type Node struct {
	Name      string
	Geometry  Drawable
	Color     math.Vec3
	Visible   bool
	Wireframe bool

	translation math.Vec3
	scale       float32
}

// NewNode returns a visible node at the origin.
func NewNode(name string, geometry Drawable) *Node {
	return &Node{
		Name:     name,
		Geometry: geometry,
		Color:    math.Vec3{X: 0.8, Y: 0.8, Z: 0.8},
		Visible:  true,
		scale:    1,
	}
}

// SetTranslation moves the node.
func (n *Node) SetTranslation(p math.Vec3) {
	n.translation = p
}

// Translation returns the node position.
func (n *Node) Translation() math.Vec3 {
	return n.translation
}

// SetScale sets a uniform scale.
func (n *Node) SetScale(s float32) {
	n.scale = s
}

// Model returns the model matrix, scale first then translation.
func (n *Node) Model() math.Mat4 {
	return math.Translate(n.translation).Mul(math.Scale(n.scale))
}
