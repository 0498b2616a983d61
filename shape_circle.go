package emitter

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Circle emits from a ring in the XZ plane, pointing away from its centre.
type Circle struct {
	Radius float32
}

func NewCircle(radius float32) *Circle {
	return &Circle{Radius: radius}
}

func (c *Circle) Kind() ShapeKind { return ShapeCircle }
func (c *Circle) empty() bool     { return false }

func (c *Circle) validate() error {
	if c.Radius < 0 {
		return invalidf("circle radius %v is negative", c.Radius)
	}
	return nil
}

func (c *Circle) EmitRandomParticle(rng Rand, thickness float32, mode EmitterDirectionMode) (EmittedParticle, error) {
	return c.particleAt(rng.Float32()*2*math32.Pi, rng, thickness, mode), nil
}

func (c *Circle) SpreadParticle(spread *EmissionSpread, rng Rand, thickness float32, mode EmitterDirectionMode) (EmittedParticle, error) {
	theta := spread.nextSlice().pick(rng) * 2 * math32.Pi
	return c.particleAt(theta, rng, thickness, mode), nil
}

func (c *Circle) particleAt(theta float32, rng Rand, thickness float32, mode EmitterDirectionMode) EmittedParticle {
	radial := ringPoint(theta)
	coef := thicknessCoef(rng, thickness)
	return EmittedParticle{
		Position:  radial.Mul(c.Radius * coef),
		Direction: mode.resolve(func() mgl32.Vec3 { return radial }),
	}
}
