package emitter

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Cone emits from a disc of Radius in the XZ plane. Particles at the rim leave
// at Angle (radians) from +Y, particles nearer the axis proportionally closer to it.
type Cone struct {
	Angle  float32
	Radius float32
}

func NewCone(angle, radius float32) *Cone {
	return &Cone{Angle: angle, Radius: radius}
}

func DefaultCone() *Cone {
	return NewCone(mgl32.DegToRad(25), 1)
}

func (c *Cone) Kind() ShapeKind { return ShapeCone }
func (c *Cone) empty() bool     { return false }

func (c *Cone) validate() error {
	if c.Radius < 0 {
		return invalidf("cone radius %v is negative", c.Radius)
	}
	if c.Angle < 0 || c.Angle > math32.Pi/2 {
		return invalidf("cone angle %v is outside [0, pi/2]", c.Angle)
	}
	return nil
}

func (c *Cone) EmitRandomParticle(rng Rand, thickness float32, mode EmitterDirectionMode) (EmittedParticle, error) {
	return c.particleAt(rng.Float32()*2*math32.Pi, rng, thickness, mode), nil
}

func (c *Cone) SpreadParticle(spread *EmissionSpread, rng Rand, thickness float32, mode EmitterDirectionMode) (EmittedParticle, error) {
	theta := spread.nextSlice().pick(rng) * 2 * math32.Pi
	return c.particleAt(theta, rng, thickness, mode), nil
}

func (c *Cone) particleAt(theta float32, rng Rand, thickness float32, mode EmitterDirectionMode) EmittedParticle {
	radial := ringPoint(theta)
	coef := thicknessCoef(rng, thickness)
	tilt := c.Angle * coef
	dir := mode.resolve(func() mgl32.Vec3 {
		return unitY.Mul(math32.Cos(tilt)).Add(radial.Mul(math32.Sin(tilt)))
	})
	return EmittedParticle{Position: radial.Mul(c.Radius * coef), Direction: dir}
}
