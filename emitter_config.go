package emitter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/gekko3d/emitter/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// ShapeConfig describes a shape. Only the fields of the selected Kind are read;
// unset ones take the shape's defaults.
type ShapeConfig struct {
	Kind string `json:"kind"`

	// convex_mesh. A missing list means the unit cube, an empty one an empty mesh.
	Positions     *[]mgl32.Vec3 `json:"positions,omitempty"`
	NominalCenter *mgl32.Vec3   `json:"nominal_center,omitempty"`

	// sphere, circle, cone
	Center *mgl32.Vec3 `json:"center,omitempty"`
	Radius *float32    `json:"radius,omitempty"`
	Angle  *float32    `json:"angle,omitempty"`

	// box
	Min *mgl32.Vec3 `json:"min,omitempty"`
	Max *mgl32.Vec3 `json:"max,omitempty"`
}

type DirectionConfig struct {
	Mode      string      `json:"mode"`
	Fixed     *mgl32.Vec3 `json:"fixed,omitempty"`
	Randomize float32     `json:"randomize"`
	Spherize  float32     `json:"spherize"`
}

type SpreadConfig struct {
	Amount   float32 `json:"amount"`
	LoopMode string  `json:"loop_mode"`
	Uniform  bool    `json:"uniform"`
}

// EmitterConfig is the stored form of an EmitterShape. The running spread
// index is not part of it; a loaded emitter always starts from a rewound index.
type EmitterConfig struct {
	Shape     ShapeConfig     `json:"shape"`
	Thickness float32         `json:"thickness"`
	Direction DirectionConfig `json:"direction"`
	Mode      string          `json:"mode"`
	Spread    *SpreadConfig   `json:"spread,omitempty"`
}

func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		Shape:     ShapeConfig{Kind: ShapeConvexMesh.String()},
		Thickness: 1,
		Direction: DirectionConfig{Mode: DirectionAutomatic.String()},
		Mode:      ModeRandom.String(),
	}
}

// ConfigOf captures the configuration of e.
func ConfigOf(e *EmitterShape) (EmitterConfig, error) {
	sc, err := shapeConfigOf(e.Shape)
	if err != nil {
		return EmitterConfig{}, err
	}
	cfg := EmitterConfig{
		Shape:     sc,
		Thickness: e.Thickness,
		Direction: DirectionConfig{
			Mode:      e.DirectionParams.BaseMode.Kind.String(),
			Randomize: e.DirectionParams.RandomizeDirection,
			Spherize:  e.DirectionParams.SpherizeDirection,
		},
		Mode: e.Mode.Kind().String(),
	}
	if e.DirectionParams.BaseMode.Kind == DirectionFixed {
		fixed := e.DirectionParams.BaseMode.Fixed
		cfg.Direction.Fixed = &fixed
	}
	if s := e.Mode.Spread(); s != nil {
		cfg.Spread = &SpreadConfig{
			Amount:   s.Amount,
			LoopMode: s.LoopMode.String(),
			Uniform:  s.Uniform,
		}
	}
	return cfg, nil
}

func shapeConfigOf(s Shape) (ShapeConfig, error) {
	if s == nil {
		return ShapeConfig{}, invalidf("no shape set")
	}
	sc := ShapeConfig{Kind: s.Kind().String()}
	switch shape := s.(type) {
	case *ConvexMesh:
		positions, err := shape.positions()
		if err != nil {
			return ShapeConfig{}, err
		}
		stored := append([]mgl32.Vec3{}, positions...)
		sc.Positions = &stored
		center := shape.NominalCenter
		sc.NominalCenter = &center
	case *Sphere:
		center, radius := shape.Center, shape.Radius
		sc.Center, sc.Radius = &center, &radius
	case *Circle:
		radius := shape.Radius
		sc.Radius = &radius
	case *Cone:
		angle, radius := shape.Angle, shape.Radius
		sc.Angle, sc.Radius = &angle, &radius
	case *Box:
		lo, hi := shape.Bounds.Min(), shape.Bounds.Max()
		sc.Min, sc.Max = &lo, &hi
	default:
		return ShapeConfig{}, invalidf("shape %s cannot be stored", s.Kind())
	}
	return sc, nil
}

// Build creates a validated emitter from the configuration.
func (c EmitterConfig) Build() (*EmitterShape, error) {
	shape, err := c.Shape.build()
	if err != nil {
		return nil, err
	}
	e := NewEmitterShape(shape)
	e.Thickness = c.Thickness

	switch c.Direction.Mode {
	case DirectionAutomatic.String(), "":
		e.DirectionParams.BaseMode = AutomaticDirection()
	case DirectionFixed.String():
		if c.Direction.Fixed == nil {
			return nil, invalidf("fixed direction mode without a direction")
		}
		e.DirectionParams.BaseMode = FixedDirection(*c.Direction.Fixed)
	default:
		return nil, invalidf("unknown direction mode %q", c.Direction.Mode)
	}
	e.DirectionParams.RandomizeDirection = c.Direction.Randomize
	e.DirectionParams.SpherizeDirection = c.Direction.Spherize

	switch c.Mode {
	case ModeRandom.String(), "":
		e.SetMode(RandomEmission())
	case ModeSpread.String():
		spread := NewEmissionSpread()
		if c.Spread != nil {
			spread.Amount = c.Spread.Amount
			spread.Uniform = c.Spread.Uniform
			switch c.Spread.LoopMode {
			case SpreadLoop.String(), "":
				spread.LoopMode = SpreadLoop
			case SpreadPingPong.String():
				spread.LoopMode = SpreadPingPong
			default:
				return nil, invalidf("unknown spread loop mode %q", c.Spread.LoopMode)
			}
		}
		e.SetMode(SpreadEmission(spread))
	default:
		return nil, invalidf("unknown emission mode %q", c.Mode)
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (sc ShapeConfig) build() (Shape, error) {
	switch sc.Kind {
	case ShapeConvexMesh.String(), "":
		shape := DefaultConvexMesh()
		if sc.Positions != nil {
			shape.Mesh = mesh.FromPositions(*sc.Positions)
		}
		if sc.NominalCenter != nil {
			shape.NominalCenter = *sc.NominalCenter
		}
		return shape, nil
	case ShapeSphere.String():
		shape := NewSphere(mgl32.Vec3{}, 1)
		if sc.Center != nil {
			shape.Center = *sc.Center
		}
		if sc.Radius != nil {
			shape.Radius = *sc.Radius
		}
		return shape, nil
	case ShapeCircle.String():
		shape := NewCircle(1)
		if sc.Radius != nil {
			shape.Radius = *sc.Radius
		}
		return shape, nil
	case ShapeCone.String():
		shape := DefaultCone()
		if sc.Angle != nil {
			shape.Angle = *sc.Angle
		}
		if sc.Radius != nil {
			shape.Radius = *sc.Radius
		}
		return shape, nil
	case ShapeBox.String():
		shape := DefaultBox()
		lo, hi := shape.Bounds.Min(), shape.Bounds.Max()
		if sc.Min != nil {
			lo = *sc.Min
		}
		if sc.Max != nil {
			hi = *sc.Max
		}
		shape.Bounds = cube.Box(lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
		return shape, nil
	}
	return nil, invalidf("unknown shape kind %q", sc.Kind)
}

func MarshalEmitterConfig(e *EmitterShape) ([]byte, error) {
	cfg, err := ConfigOf(e)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(cfg, "", "  ")
}

// UnmarshalEmitterConfig builds an emitter from JSON. Fields missing from data
// keep the values of DefaultEmitterConfig.
func UnmarshalEmitterConfig(data []byte) (*EmitterShape, error) {
	cfg := DefaultEmitterConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode emitter config: %w", err)
	}
	return cfg.Build()
}

func SaveEmitterConfig(e *EmitterShape, filename string) error {
	bytes, err := MarshalEmitterConfig(e)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, bytes, 0644)
}

func LoadEmitterConfig(filename string) (*EmitterShape, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	e, err := UnmarshalEmitterConfig(bytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return e, nil
}
