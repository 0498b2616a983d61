package emitter

import (
	"fmt"

	"github.com/gekko3d/emitter/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// ConvexMesh emits from the vertices of a convex mesh, directing particles away
// from NominalCenter. Vertices are picked with equal weight regardless of the
// area around them.
type ConvexMesh struct {
	Mesh          *mesh.Mesh
	NominalCenter mgl32.Vec3
}

func NewConvexMesh(m *mesh.Mesh, nominalCenter mgl32.Vec3) *ConvexMesh {
	return &ConvexMesh{Mesh: m, NominalCenter: nominalCenter}
}

// DefaultConvexMesh is a unit cube centred on the origin.
func DefaultConvexMesh() *ConvexMesh {
	return NewConvexMesh(mesh.Cube(1), mgl32.Vec3{})
}

func (c *ConvexMesh) Kind() ShapeKind { return ShapeConvexMesh }

func (c *ConvexMesh) empty() bool {
	return c.Mesh == nil || c.Mesh.CountVertices() == 0
}

func (c *ConvexMesh) validate() error {
	_, err := c.positions()
	return err
}

// positions returns nil for an empty mesh.
func (c *ConvexMesh) positions() ([]mgl32.Vec3, error) {
	if c.empty() {
		return nil, nil
	}
	attr, ok := c.Mesh.Attribute(mesh.AttributePosition)
	if !ok {
		return nil, fmt.Errorf("convex mesh %s: %w", c.Mesh.Id(), ErrMissingPositions)
	}
	if attr.Format != mesh.VertexFormatFloat32x3 {
		return nil, fmt.Errorf("convex mesh %s: got %s: %w", c.Mesh.Id(), attr.Format, ErrUnsupportedPositionFormat)
	}
	return attr.Float32x3, nil
}

func (c *ConvexMesh) EmitRandomParticle(rng Rand, thickness float32, mode EmitterDirectionMode) (EmittedParticle, error) {
	positions, err := c.positions()
	if err != nil || len(positions) == 0 {
		return DefaultParticle(), err
	}
	return c.particleAt(positions[rng.IntN(len(positions))], rng, thickness, mode), nil
}

// SpreadParticle walks the vertex buffer in order. An empty mesh does not
// advance the spread index.
func (c *ConvexMesh) SpreadParticle(spread *EmissionSpread, rng Rand, thickness float32, mode EmitterDirectionMode) (EmittedParticle, error) {
	positions, err := c.positions()
	if err != nil || len(positions) == 0 {
		return DefaultParticle(), err
	}
	slice := spread.nextSlice()
	return c.particleAt(positions[slice.index(rng, len(positions))], rng, thickness, mode), nil
}

func (c *ConvexMesh) particleAt(vertex mgl32.Vec3, rng Rand, thickness float32, mode EmitterDirectionMode) EmittedParticle {
	coef := thicknessCoef(rng, thickness)
	dir := mode.resolve(func() mgl32.Vec3 {
		return normalizeOrY(vertex.Sub(c.NominalCenter))
	})
	return EmittedParticle{Position: vertex.Mul(coef), Direction: dir}
}
