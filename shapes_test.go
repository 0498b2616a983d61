package emitter

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// atan2Turns returns the angle of (x, z) around +Y as a fraction of a full turn in [0, 1).
func atan2Turns(z, x float32) float32 {
	a := math32.Atan2(z, x) / (2 * math32.Pi)
	if a < 0 {
		a += 1
	}
	return a
}

func TestSphere_SamplesShell(t *testing.T) {
	center := mgl32.Vec3{1, -2, 0.5}
	s := NewSphere(center, 2)
	rng := NewSeededRand("sphere")

	for _, thickness := range []float32{0, 0.5, 1} {
		for i := 0; i < 100; i++ {
			p, err := s.EmitRandomParticle(rng, thickness, AutomaticDirection())
			require.NoError(t, err)
			offset := p.Position.Sub(center)
			assert.LessOrEqual(t, offset.Len(), float32(2)+1e-4)
			assert.GreaterOrEqual(t, offset.Len(), 2*(1-thickness)-1e-4)
			assertUnit(t, p.Direction)
			if offset.Len() > 1e-3 {
				assertVecInDelta(t, offset.Normalize(), p.Direction, 1e-4)
			}
		}
	}
}

func TestSphere_SpreadWalksLongitude(t *testing.T) {
	s := NewSphere(mgl32.Vec3{}, 1)
	spread := NewEmissionSpread()
	spread.Amount = 0.25
	spread.Uniform = true
	rng := NewSeededRand("longitude")

	for _, want := range []float32{0.25, 0.5, 0.75} {
		p, err := s.SpreadParticle(&spread, rng, 0, AutomaticDirection())
		require.NoError(t, err)
		if math32.Abs(p.Position[1]) > 0.999 {
			continue // pole, longitude undefined
		}
		assert.InDelta(t, want, atan2Turns(p.Position[2], p.Position[0]), 1e-3)
	}
}

func TestCircle_StaysInPlane(t *testing.T) {
	c := NewCircle(3)
	rng := NewSeededRand("circle")
	for i := 0; i < 100; i++ {
		p, err := c.EmitRandomParticle(rng, 0.5, AutomaticDirection())
		require.NoError(t, err)
		assert.Zero(t, p.Position[1])
		assert.Zero(t, p.Direction[1])
		assert.LessOrEqual(t, p.Position.Len(), float32(3)+1e-4)
		assert.GreaterOrEqual(t, p.Position.Len(), float32(1.5)-1e-4)
		assertVecInDelta(t, p.Position.Normalize(), p.Direction, 1e-4)
	}
}

func TestCone_TiltIsBoundedByAngle(t *testing.T) {
	c := NewCone(mgl32.DegToRad(30), 2)
	rng := NewSeededRand("cone")
	for i := 0; i < 100; i++ {
		p, err := c.EmitRandomParticle(rng, 1, AutomaticDirection())
		require.NoError(t, err)
		assert.Zero(t, p.Position[1])
		assert.LessOrEqual(t, p.Position.Len(), float32(2)+1e-4)
		assertUnit(t, p.Direction)
		assert.GreaterOrEqual(t, p.Direction.Dot(unitY), math32.Cos(mgl32.DegToRad(30))-1e-5)
	}

	// Rim particles leave at exactly the cone angle.
	p, err := c.EmitRandomParticle(rng, 0, AutomaticDirection())
	require.NoError(t, err)
	assert.InDelta(t, math32.Cos(mgl32.DegToRad(30)), p.Direction[1], 1e-5)
}

func TestBox_SurfaceSamplesFollowFaceNormals(t *testing.T) {
	b := NewBox(cube.Box(-1, 0, -2, 3, 1, 2))
	center := mgl32.Vec3{1, 0.5, 0}
	half := mgl32.Vec3{2, 0.5, 2}
	rng := NewSeededRand("box")

	for i := 0; i < 200; i++ {
		p, err := b.EmitRandomParticle(rng, 0, AutomaticDirection())
		require.NoError(t, err)
		assertUnit(t, p.Direction)

		local := p.Position.Sub(center)
		axis := -1
		for a := 0; a < 3; a++ {
			if p.Direction[a] != 0 {
				axis = a
			}
		}
		require.NotEqual(t, -1, axis)
		assert.InDelta(t, p.Direction[axis]*half[axis], local[axis], 1e-5, "sample sits on the face it points out of")
		for a := 0; a < 3; a++ {
			assert.LessOrEqual(t, math32.Abs(local[a]), half[a]+1e-5)
		}
	}
}

func TestBox_VolumeSamplesStayInside(t *testing.T) {
	b := DefaultBox()
	rng := NewSeededRand("box-volume")
	for i := 0; i < 200; i++ {
		p, err := b.EmitRandomParticle(rng, 1, AutomaticDirection())
		require.NoError(t, err)
		for a := 0; a < 3; a++ {
			assert.LessOrEqual(t, math32.Abs(p.Position[a]), float32(0.5)+1e-5)
		}
	}
}

func TestBox_SpreadWalksX(t *testing.T) {
	b := NewBox(cube.Box(0, -1, -1, 10, 1, 1))
	spread := NewEmissionSpread()
	spread.Amount = 0.2
	spread.Uniform = true
	rng := NewSeededRand("box-spread")

	for _, want := range []float32{2, 4, 6, 8} {
		p, err := b.SpreadParticle(&spread, rng, 0, AutomaticDirection())
		require.NoError(t, err)
		assert.InDelta(t, want, p.Position[0], 1e-4)
		assert.Zero(t, p.Direction[0], "spread samples lie on faces around X")
	}
}

func TestShapes_FixedDirectionPassesThrough(t *testing.T) {
	fixed := mgl32.Vec3{0.2, -3, 1}
	shapes := []SpreadShape{DefaultConvexMesh(), NewSphere(mgl32.Vec3{}, 1), NewCircle(1), DefaultCone(), DefaultBox()}
	rng := NewSeededRand("fixed")
	for _, s := range shapes {
		p, err := s.EmitRandomParticle(rng, 0.5, FixedDirection(fixed))
		require.NoError(t, err)
		assert.Equal(t, fixed, p.Direction, s.Kind().String())

		spread := NewEmissionSpread()
		p, err = s.SpreadParticle(&spread, rng, 0.5, FixedDirection(fixed))
		require.NoError(t, err)
		assert.Equal(t, fixed, p.Direction, s.Kind().String())
		assert.NotEqual(t, float32(0), spread.State().CurrentIndex, "%s advanced the spread", s.Kind())
	}
}

func TestPickWeighted(t *testing.T) {
	assert.Equal(t, 2, pickWeighted(&scriptedRand{}, []float32{0, 0, 0}, 2))
	assert.Equal(t, 0, pickWeighted(&scriptedRand{floats: []float32{0.1}}, []float32{1, 0, 1}, 1))
	assert.Equal(t, 2, pickWeighted(&scriptedRand{floats: []float32{0.6}}, []float32{1, 0, 1}, 1))
}

func TestShapeKind_String(t *testing.T) {
	assert.Equal(t, "convex_mesh", ShapeConvexMesh.String())
	assert.Equal(t, "box", ShapeBox.String())
	assert.Equal(t, "unknown", ShapeKind(99).String())
}
