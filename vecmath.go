package emitter

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const normalizeEpsilon = 1e-6

var unitY = mgl32.Vec3{0, 1, 0}

// tryNormalize reports false when v is too short (or not finite) to yield a direction.
func tryNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := v.Len()
	if !(l > normalizeEpsilon && l <= math32.MaxFloat32) {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// normalizeOrY normalizes v, falling back to +Y.
func normalizeOrY(v mgl32.Vec3) mgl32.Vec3 {
	if n, ok := tryNormalize(v); ok {
		return n
	}
	return unitY
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

// ringPoint is the unit vector at angle theta around +Y, in the XZ plane.
func ringPoint(theta float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(theta), 0, math32.Sin(theta)}
}
