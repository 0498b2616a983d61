package emitter

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Box emits from the faces of an axis aligned box, along the face normals.
// Spread walks the X axis across the faces that wrap around it.
type Box struct {
	Bounds cube.BBox
}

func NewBox(bounds cube.BBox) *Box {
	return &Box{Bounds: bounds}
}

// DefaultBox is a unit cube centred on the origin.
func DefaultBox() *Box {
	return NewBox(cube.Box(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5))
}

func (b *Box) Kind() ShapeKind { return ShapeBox }
func (b *Box) empty() bool     { return false }
func (b *Box) validate() error { return nil }

func (b *Box) center() mgl32.Vec3 {
	return b.Bounds.Min().Add(b.Bounds.Max()).Mul(0.5)
}

func (b *Box) halfExtents() mgl32.Vec3 {
	return mgl32.Vec3{b.Bounds.Width() / 2, b.Bounds.Height() / 2, b.Bounds.Length() / 2}
}

func (b *Box) EmitRandomParticle(rng Rand, thickness float32, mode EmitterDirectionMode) (EmittedParticle, error) {
	h := b.halfExtents()
	// Each pair of faces is weighted by its area.
	areas := [3]float32{h[1] * h[2], h[0] * h[2], h[0] * h[1]}
	axis := pickWeighted(rng, areas[:], 1)

	var local mgl32.Vec3
	for i := 0; i < 3; i++ {
		local[i] = randRange(rng, -h[i], h[i])
	}
	sign := randomSign(rng)
	local[axis] = sign * h[axis]
	return b.particleAt(local, axis, sign, rng, thickness, mode), nil
}

func (b *Box) SpreadParticle(spread *EmissionSpread, rng Rand, thickness float32, mode EmitterDirectionMode) (EmittedParticle, error) {
	h := b.halfExtents()
	var local mgl32.Vec3
	local[0] = lerp(-h[0], h[0], spread.nextSlice().pick(rng))

	// Y faces contribute a strip as wide as Z, and the other way round.
	axis := 1 + pickWeighted(rng, []float32{h[2], h[1]}, 0)
	other := 3 - axis
	local[other] = randRange(rng, -h[other], h[other])
	sign := randomSign(rng)
	local[axis] = sign * h[axis]
	return b.particleAt(local, axis, sign, rng, thickness, mode), nil
}

func (b *Box) particleAt(local mgl32.Vec3, axis int, sign float32, rng Rand, thickness float32, mode EmitterDirectionMode) EmittedParticle {
	coef := thicknessCoef(rng, thickness)
	dir := mode.resolve(func() mgl32.Vec3 {
		var n mgl32.Vec3
		n[axis] = sign
		return n
	})
	return EmittedParticle{Position: b.center().Add(local.Mul(coef)), Direction: dir}
}

// pickWeighted returns an index drawn proportionally to weights, or fallback
// when every weight is zero.
func pickWeighted(rng Rand, weights []float32, fallback int) int {
	var total float32
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return fallback
	}
	r := rng.Float32() * total
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}
