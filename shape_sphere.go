package emitter

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere emits from a sphere shell around Center. Spread walks the longitude.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

func NewSphere(center mgl32.Vec3, radius float32) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

func (s *Sphere) Kind() ShapeKind { return ShapeSphere }
func (s *Sphere) empty() bool     { return false }

func (s *Sphere) validate() error {
	if s.Radius < 0 {
		return invalidf("sphere radius %v is negative", s.Radius)
	}
	return nil
}

func (s *Sphere) EmitRandomParticle(rng Rand, thickness float32, mode EmitterDirectionMode) (EmittedParticle, error) {
	phi := rng.Float32() * 2 * math32.Pi
	return s.particleAt(phi, rng, thickness, mode), nil
}

func (s *Sphere) SpreadParticle(spread *EmissionSpread, rng Rand, thickness float32, mode EmitterDirectionMode) (EmittedParticle, error) {
	phi := spread.nextSlice().pick(rng) * 2 * math32.Pi
	return s.particleAt(phi, rng, thickness, mode), nil
}

// particleAt picks the height uniformly, which is area uniform on a sphere.
func (s *Sphere) particleAt(phi float32, rng Rand, thickness float32, mode EmitterDirectionMode) EmittedParticle {
	y := randRange(rng, -1, 1)
	r := math32.Sqrt(math32.Max(0, 1-y*y))
	normal := mgl32.Vec3{r * math32.Cos(phi), y, r * math32.Sin(phi)}
	coef := thicknessCoef(rng, thickness)
	return EmittedParticle{
		Position:  s.Center.Add(normal.Mul(s.Radius * coef)),
		Direction: mode.resolve(func() mgl32.Vec3 { return normalizeOrY(normal) }),
	}
}
