package mesh

// Attribute identifies one vertex attribute block.
type Attribute int

// Attribute blocks in buffer order. The value doubles as the shader
// attribute location.
const (
	AttrPosition Attribute = iota
	AttrNormal
	AttrTexCoord
	AttrTangent
	AttrBinormal

	attributeCount
)

func (a Attribute) String() string {
	switch a {
	case AttrPosition:
		return "position"
	case AttrNormal:
		return "normal"
	case AttrTexCoord:
		return "texcoord"
	case AttrTangent:
		return "tangent"
	case AttrBinormal:
		return "binormal"
	default:
		return "unknown"
	}
}

// Block locates one attribute inside a packed vertex buffer.
type Block struct {
	Attribute  Attribute
	Components int // float32 components per vertex
	Offset     int // byte offset of the first element
	Size       int // bytes
}

// Layout describes a blocked vertex buffer: every attribute is stored
// contiguously for all vertices, blocks follow each other with no padding.
type Layout struct {
	Blocks [attributeCount]Block
	Size   int // total bytes
}

// Block returns the block for an attribute.
func (l Layout) Block(a Attribute) Block {
	return l.Blocks[a]
}

const floatSize = 4

// Pack flattens m into one float32 slice in the order
// positions | normals | texcoords | tangents | binormals.
func Pack(m *Mesh) ([]float32, Layout) {
	n := m.VertexCount()
	comps := [attributeCount]int{3, 3, 2, 3, 3}

	var layout Layout
	total := 0
	for a := AttrPosition; a < attributeCount; a++ {
		size := n * comps[a] * floatSize
		layout.Blocks[a] = Block{Attribute: a, Components: comps[a], Offset: total, Size: size}
		total += size
	}
	layout.Size = total

	data := make([]float32, 0, total/floatSize)
	for _, p := range m.Positions {
		data = append(data, p.X, p.Y, p.Z)
	}
	for _, v := range m.Normals {
		data = append(data, v.X, v.Y, v.Z)
	}
	for _, uv := range m.TexCoords {
		data = append(data, uv.X, uv.Y)
	}
	for _, v := range m.Tangents {
		data = append(data, v.X, v.Y, v.Z)
	}
	for _, v := range m.Binormals {
		data = append(data, v.X, v.Y, v.Z)
	}
	return data, layout
}

// PackIndices flattens the triangle list for an element buffer.
func PackIndices(m *Mesh) []uint32 {
	out := make([]uint32, 0, m.IndexCount())
	for _, t := range m.Triangles {
		out = append(out, t[0], t[1], t[2])
	}
	return out
}
