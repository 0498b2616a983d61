package emitter

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// EmitterShape is the emission volume plus every emission option. It owns the
// running spread state, so it must not be used from several goroutines at once.
type EmitterShape struct {
	Shape Shape
	// Thickness is the proportion of the volume that emits: 0 for the outer
	// surface, 1 for the entire volume.
	Thickness       float32
	DirectionParams EmitterDirectionParams
	Mode            EmissionMode

	logger Logger
}

// NewEmitterShape uses shape with default options, or a unit cube mesh when shape is nil.
func NewEmitterShape(shape Shape) *EmitterShape {
	if shape == nil {
		shape = DefaultConvexMesh()
	}
	return &EmitterShape{
		Shape:     shape,
		Thickness: 1,
		DirectionParams: EmitterDirectionParams{
			BaseMode: AutomaticDirection(),
		},
		Mode:   RandomEmission(),
		logger: NewNopLogger(),
	}
}

func (e *EmitterShape) SetLogger(l Logger) {
	if l == nil {
		l = NewNopLogger()
	}
	e.logger = l
}

func (e *EmitterShape) log() Logger {
	if e.logger == nil {
		return NewNopLogger()
	}
	return e.logger
}

// SetMode switches the emission mode. Entering spread mode always starts from a
// rewound index, even when switching from another spread mode.
func (e *EmitterShape) SetMode(mode EmissionMode) {
	if s := mode.Spread(); s != nil {
		s.Reset()
	}
	e.Mode = mode
}

// Validate checks everything that would make EmitParticle fail, plus option ranges.
func (e *EmitterShape) Validate() error {
	if e.Shape == nil {
		return invalidf("no shape set")
	}
	if err := checkRatio("thickness", e.Thickness); err != nil {
		return err
	}
	if err := checkRatio("randomize_direction", e.DirectionParams.RandomizeDirection); err != nil {
		return err
	}
	if err := checkRatio("spherize_direction", e.DirectionParams.SpherizeDirection); err != nil {
		return err
	}
	if s := e.Mode.Spread(); s != nil {
		if err := checkRatio("spread amount", s.Amount); err != nil {
			return err
		}
		if !SupportsSpread(e.Shape) {
			return fmt.Errorf("%s shape: %w", e.Shape.Kind(), ErrSpreadUnsupported)
		}
	}
	return e.Shape.validate()
}

// EmitParticle samples the shape according to the emission mode, advancing the
// spread index in spread mode, then applies the direction parameters.
//
// An empty shape yields DefaultParticle untouched. Errors mean the emitter is
// misconfigured; no particle should be spawned.
func (e *EmitterShape) EmitParticle(rng Rand) (EmittedParticle, error) {
	if e.Shape == nil {
		return EmittedParticle{}, invalidf("no shape set")
	}

	var (
		particle EmittedParticle
		err      error
	)
	base := e.DirectionParams.BaseMode
	switch e.Mode.Kind() {
	case ModeSpread:
		ss, ok := e.Shape.(SpreadShape)
		if !ok {
			return EmittedParticle{}, fmt.Errorf("%s shape: %w", e.Shape.Kind(), ErrSpreadUnsupported)
		}
		particle, err = ss.SpreadParticle(e.Mode.Spread(), rng, e.Thickness, base)
	default:
		particle, err = e.Shape.EmitRandomParticle(rng, e.Thickness, base)
	}
	if err != nil {
		return EmittedParticle{}, err
	}

	if e.Shape.empty() {
		e.log().Debugf("%s shape has no geometry, emitting default particle", e.Shape.Kind())
		return particle, nil
	}
	particle.Direction = e.DirectionParams.compose(rng, particle)
	return particle, nil
}

// compose blends the shape direction toward a random direction, then toward the
// particle position seen from the origin. The second pass reads the first one's result.
func (p EmitterDirectionParams) compose(rng Rand, particle EmittedParticle) mgl32.Vec3 {
	dir := particle.Direction
	if p.RandomizeDirection > 0 {
		random := normalizeOrY(mgl32.Vec3{
			randRange(rng, -1, 1),
			randRange(rng, -1, 1),
			randRange(rng, -1, 1),
		})
		dir = normalizeOrY(random.Mul(p.RandomizeDirection).Add(dir.Mul(1 - p.RandomizeDirection)))
	}
	if p.SpherizeDirection > 0 {
		dir = normalizeOrY(particle.Position.Mul(p.SpherizeDirection).Add(dir.Mul(1 - p.SpherizeDirection)))
	}
	return dir
}

func checkRatio(name string, v float32) error {
	if !(v >= 0 && v <= 1) {
		return invalidf("%s %v is outside [0, 1]", name, v)
	}
	return nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
