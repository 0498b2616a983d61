package mesh

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type Id string

type AttributeName string

const (
	AttributePosition AttributeName = "Vertex_Position"
	AttributeNormal   AttributeName = "Vertex_Normal"
	AttributeUV       AttributeName = "Vertex_Uv"
)

type VertexFormat uint8

const (
	VertexFormatFloat32x2 VertexFormat = iota
	VertexFormatFloat32x3
)

func (f VertexFormat) String() string {
	switch f {
	case VertexFormatFloat32x2:
		return "Float32x2"
	case VertexFormatFloat32x3:
		return "Float32x3"
	}
	return "Unknown"
}

// VertexAttribute is one per-vertex buffer. Only the slice matching Format is read.
type VertexAttribute struct {
	Format    VertexFormat
	Float32x2 []mgl32.Vec2
	Float32x3 []mgl32.Vec3
}

func Float32x3(values []mgl32.Vec3) VertexAttribute {
	return VertexAttribute{Format: VertexFormatFloat32x3, Float32x3: values}
}

func Float32x2(values []mgl32.Vec2) VertexAttribute {
	return VertexAttribute{Format: VertexFormatFloat32x2, Float32x2: values}
}

func (a VertexAttribute) Len() int {
	switch a.Format {
	case VertexFormatFloat32x2:
		return len(a.Float32x2)
	case VertexFormatFloat32x3:
		return len(a.Float32x3)
	}
	return 0
}

// Mesh holds named vertex attributes in insertion order plus an optional index buffer.
type Mesh struct {
	id         Id
	attributes *orderedmap.OrderedMap[AttributeName, VertexAttribute]
	indices    []uint32
}

func New() *Mesh {
	return &Mesh{
		id:         makeMeshId(),
		attributes: orderedmap.NewOrderedMap[AttributeName, VertexAttribute](),
	}
}

func (m *Mesh) Id() Id {
	return m.id
}

func (m *Mesh) SetAttribute(name AttributeName, values VertexAttribute) {
	m.attributes.Set(name, values)
}

func (m *Mesh) Attribute(name AttributeName) (VertexAttribute, bool) {
	return m.attributes.Get(name)
}

func (m *Mesh) RemoveAttribute(name AttributeName) bool {
	return m.attributes.Delete(name)
}

// AttributeNames lists attributes in the order they were first set.
func (m *Mesh) AttributeNames() []AttributeName {
	names := make([]AttributeName, 0, m.attributes.Len())
	for el := m.attributes.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

func (m *Mesh) SetIndices(indices []uint32) {
	m.indices = indices
}

func (m *Mesh) Indices() []uint32 {
	return m.indices
}

// CountVertices returns the smallest attribute length, or 0 for a mesh without attributes.
func (m *Mesh) CountVertices() int {
	count := -1
	for el := m.attributes.Front(); el != nil; el = el.Next() {
		n := el.Value.Len()
		if count < 0 || n < count {
			count = n
		}
	}
	if count < 0 {
		return 0
	}
	return count
}

func makeMeshId() Id {
	return Id(uuid.NewString())
}
