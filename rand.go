package emitter

import (
	"math/rand/v2"

	"github.com/zeebo/xxh3"
)

// Rand is the uniform random source consumed by every sampling path.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float32() float32
	IntN(n int) int
}

// NewSeededRand returns a generator whose stream is fully determined by key,
// e.g. an emitter name. Equal keys always replay the same draws.
func NewSeededRand(key string) *rand.Rand {
	h := xxh3.HashString(key)
	return rand.New(rand.NewPCG(h, h^0x9e3779b97f4a7c15))
}

// randRange draws uniformly from [lo, hi].
func randRange(rng Rand, lo, hi float32) float32 {
	return lo + (hi-lo)*rng.Float32()
}
