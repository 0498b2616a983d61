package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCube_DefaultLayout(t *testing.T) {
	m := Cube(1)

	assert.Equal(t, 24, m.CountVertices())
	assert.Len(t, m.Indices(), 36)
	assert.Equal(t, []AttributeName{AttributePosition, AttributeNormal, AttributeUV}, m.AttributeNames())

	pos, ok := m.Attribute(AttributePosition)
	require.True(t, ok)
	require.Equal(t, VertexFormatFloat32x3, pos.Format)
	for _, p := range pos.Float32x3 {
		for i := 0; i < 3; i++ {
			assert.InDelta(t, 0.5, absf(p[i]), 1e-6, "vertex %v should sit on the cube corners", p)
		}
	}
}

func TestMesh_CountVertices(t *testing.T) {
	m := New()
	assert.Equal(t, 0, m.CountVertices())

	m.SetAttribute(AttributePosition, Float32x3(make([]mgl32.Vec3, 5)))
	assert.Equal(t, 5, m.CountVertices())

	// The shortest buffer bounds the vertex count.
	m.SetAttribute(AttributeUV, Float32x2(make([]mgl32.Vec2, 3)))
	assert.Equal(t, 3, m.CountVertices())

	assert.True(t, m.RemoveAttribute(AttributeUV))
	assert.False(t, m.RemoveAttribute(AttributeUV))
	assert.Equal(t, 5, m.CountVertices())
}

func TestMesh_IdsAreUnique(t *testing.T) {
	a := FromPositions(nil)
	b := FromPositions(nil)
	assert.NotEmpty(t, a.Id())
	assert.NotEqual(t, a.Id(), b.Id())
}

func TestVertexFormat_String(t *testing.T) {
	assert.Equal(t, "Float32x3", VertexFormatFloat32x3.String())
	assert.Equal(t, "Float32x2", VertexFormatFloat32x2.String())
	assert.Equal(t, "Unknown", VertexFormat(42).String())
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
