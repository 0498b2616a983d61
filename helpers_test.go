package emitter

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// scriptedRand replays fixed draws, cycling when it runs out.
type scriptedRand struct {
	floats []float32
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float32() float32 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

// randomOnlyShape has no spread sampler.
type randomOnlyShape struct {
	calls int
}

func (s *randomOnlyShape) Kind() ShapeKind { return ShapeKind(99) }
func (s *randomOnlyShape) empty() bool     { return false }
func (s *randomOnlyShape) validate() error { return nil }

func (s *randomOnlyShape) EmitRandomParticle(rng Rand, thickness float32, mode EmitterDirectionMode) (EmittedParticle, error) {
	s.calls++
	return EmittedParticle{Position: mgl32.Vec3{1, 0, 0}, Direction: mgl32.Vec3{1, 0, 0}}, nil
}

func assertUnit(t *testing.T, v mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, 1.0, float64(v.Len()), 1e-4, msgAndArgs...)
}

func assertVecInDelta(t *testing.T, expected, actual mgl32.Vec3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, float64(expected[i]), float64(actual[i]), delta, "component %d of %v vs %v", i, expected, actual)
	}
}
