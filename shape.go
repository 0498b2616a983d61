package emitter

import (
	"errors"

	"github.com/chewxy/math32"
)

var (
	// ErrSpreadUnsupported is returned when spread emission is requested from a
	// shape that has no spread sampler. It is never replaced by random sampling.
	ErrSpreadUnsupported = errors.New("shape does not support spread emission")
	// ErrMissingPositions means a mesh shape has vertices but no position buffer.
	ErrMissingPositions = errors.New("mesh has no vertex positions")
	// ErrUnsupportedPositionFormat means the position buffer is not Float32x3.
	ErrUnsupportedPositionFormat = errors.New("mesh positions must be Float32x3")
	ErrInvalidConfig             = errors.New("invalid emitter configuration")
)

type ShapeKind uint8

const (
	ShapeConvexMesh ShapeKind = iota
	ShapeSphere
	ShapeCircle
	ShapeCone
	ShapeBox
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeConvexMesh:
		return "convex_mesh"
	case ShapeSphere:
		return "sphere"
	case ShapeCircle:
		return "circle"
	case ShapeCone:
		return "cone"
	case ShapeBox:
		return "box"
	}
	return "unknown"
}

// Shape is an emission volume. The set of shapes is closed: every
// implementation lives in this package.
type Shape interface {
	Kind() ShapeKind
	// EmitRandomParticle draws a particle anywhere in the shape. thickness is the
	// filled proportion of the volume, 0 for the surface only and 1 for all of it.
	EmitRandomParticle(rng Rand, thickness float32, mode EmitterDirectionMode) (EmittedParticle, error)

	// validate reports configuration errors that would make emission fail.
	validate() error
	// empty reports geometry with nothing to sample from.
	empty() bool
}

// SpreadShape is a Shape that can also sample the slice picked by a spread index.
type SpreadShape interface {
	Shape
	SpreadParticle(spread *EmissionSpread, rng Rand, thickness float32, mode EmitterDirectionMode) (EmittedParticle, error)
}

// SupportsSpread reports whether s can be used with spread emission.
func SupportsSpread(s Shape) bool {
	_, ok := s.(SpreadShape)
	return ok
}

// thicknessCoef is the inward scale applied to a surface sample.
func thicknessCoef(rng Rand, thickness float32) float32 {
	return randRange(rng, 1-thickness, 1)
}

// index maps the slice onto one of n discrete elements.
func (sl spreadSlice) index(rng Rand, n int) int {
	last := float32(n - 1)
	if sl.uniform {
		return int(math32.Round(sl.current * last))
	}
	lo := int(math32.Round(sl.lo * last))
	hi := int(math32.Round(sl.hi * last))
	return lo + rng.IntN(hi-lo+1)
}

func randomSign(rng Rand) float32 {
	if rng.Float32() < 0.5 {
		return -1
	}
	return 1
}
