package emitter

// EmitBatch appends n particles to dst and returns the extended slice. It stops
// at the first error and returns the particles emitted so far alongside it.
func (e *EmitterShape) EmitBatch(rng Rand, n int, dst []EmittedParticle) ([]EmittedParticle, error) {
	if n <= 0 {
		return dst, nil
	}
	if cap(dst)-len(dst) < n {
		grown := make([]EmittedParticle, len(dst), len(dst)+n)
		copy(grown, dst)
		dst = grown
	}
	for i := 0; i < n; i++ {
		p, err := e.EmitParticle(rng)
		if err != nil {
			return dst, err
		}
		dst = append(dst, p)
	}
	return dst, nil
}

// SpawnAccumulator turns a spawn rate into whole particle counts per frame,
// carrying the fractional remainder over to the next frame.
type SpawnAccumulator struct {
	Rate float32 // particles per second

	acc float32
}

// Tick returns how many particles to spawn for a frame of dt seconds, capped at
// room when room is non-negative. Particles dropped by the cap are not carried over.
func (s *SpawnAccumulator) Tick(dt float32, room int) int {
	if dt <= 0 || s.Rate <= 0 {
		return 0
	}
	s.acc += s.Rate * dt
	count := int(s.acc)
	if count > 0 {
		s.acc -= float32(count)
	}
	if room >= 0 && count > room {
		count = room
	}
	return count
}

func (s *SpawnAccumulator) Reset() {
	s.acc = 0
}
