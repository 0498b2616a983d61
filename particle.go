package emitter

import "github.com/go-gl/mathgl/mgl32"

// EmittedParticle is the spawn position and initial travel direction of one particle.
type EmittedParticle struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
}

// DefaultParticle sits at the origin heading +Y.
func DefaultParticle() EmittedParticle {
	return EmittedParticle{Direction: unitY}
}

type DirectionKind uint8

const (
	// DirectionAutomatic takes the direction from the shape.
	DirectionAutomatic DirectionKind = iota
	// DirectionFixed gives every particle the same direction.
	DirectionFixed
)

func (k DirectionKind) String() string {
	switch k {
	case DirectionAutomatic:
		return "automatic"
	case DirectionFixed:
		return "fixed"
	}
	return "unknown"
}

// EmitterDirectionMode is the base direction before randomization and spherization.
// The zero value is automatic. Fixed vectors are used as given, without normalizing.
type EmitterDirectionMode struct {
	Kind  DirectionKind
	Fixed mgl32.Vec3
}

func AutomaticDirection() EmitterDirectionMode {
	return EmitterDirectionMode{Kind: DirectionAutomatic}
}

func FixedDirection(dir mgl32.Vec3) EmitterDirectionMode {
	return EmitterDirectionMode{Kind: DirectionFixed, Fixed: dir}
}

// resolve picks the fixed vector, or the automatic one computed by the shape.
func (m EmitterDirectionMode) resolve(automatic func() mgl32.Vec3) mgl32.Vec3 {
	if m.Kind == DirectionFixed {
		return m.Fixed
	}
	return automatic()
}

// EmitterDirectionParams are applied on top of the shape direction.
// Both ratios are blend weights in [0, 1]: 0 leaves the direction alone, 1 replaces it.
type EmitterDirectionParams struct {
	BaseMode           EmitterDirectionMode
	RandomizeDirection float32
	SpherizeDirection  float32
}
