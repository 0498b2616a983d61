package emitter

type SpreadLoopMode uint8

const (
	// SpreadLoop starts over at the end of each cycle.
	SpreadLoop SpreadLoopMode = iota
	// SpreadPingPong runs every other cycle backwards.
	SpreadPingPong
)

func (m SpreadLoopMode) String() string {
	switch m {
	case SpreadLoop:
		return "loop"
	case SpreadPingPong:
		return "ping_pong"
	}
	return "unknown"
}

// SpreadState is the running progress of a spread emitter.
type SpreadState struct {
	CurrentIndex float32
	Upwards      bool
}

// EmissionSpread configures spread emission and carries its running index.
// Amount is the step per emission: 0.1 emits at 10% intervals around the shape,
// 0 pins every particle to the same slice. Uniform removes the jitter inside a slice.
//
// The index and direction are owned by the emitter and only change through Advance
// or Restore; they are not part of the configuration.
type EmissionSpread struct {
	Amount   float32
	LoopMode SpreadLoopMode
	Uniform  bool

	currentIndex float32
	downwards    bool
}

func NewEmissionSpread() EmissionSpread {
	return EmissionSpread{
		Amount:   0.1,
		LoopMode: SpreadLoop,
	}
}

func (s *EmissionSpread) State() SpreadState {
	return SpreadState{CurrentIndex: s.currentIndex, Upwards: !s.downwards}
}

func (s *EmissionSpread) Restore(state SpreadState) {
	s.currentIndex = state.CurrentIndex
	s.downwards = !state.Upwards
}

// Reset rewinds to index 0 moving upwards.
func (s *EmissionSpread) Reset() {
	s.Restore(SpreadState{Upwards: true})
}

// Advance steps the index once and returns the (previous, current) pair that
// bounds the slice sampled by this emission.
//
// Loop mode maps an index past 1 to 1-index, not index-1.
// Ping-pong mode drops an out of range step and reverses for the next call.
func (s *EmissionSpread) Advance() (previous, current float32) {
	if s.downwards {
		s.currentIndex -= s.Amount
		previous = s.currentIndex + s.Amount
	} else {
		s.currentIndex += s.Amount
		previous = s.currentIndex - s.Amount
	}

	switch s.LoopMode {
	case SpreadLoop:
		if s.currentIndex > 1 {
			s.currentIndex = 1 - s.currentIndex
		}
	case SpreadPingPong:
		if s.currentIndex < 0 || s.currentIndex > 1 {
			s.downwards = !s.downwards
			s.currentIndex = previous
		}
	}
	return previous, s.currentIndex
}

// spreadSlice is the part of a shape's spread axis sampled by one emission.
type spreadSlice struct {
	lo, hi  float32
	current float32
	uniform bool
}

// nextSlice advances the spread and clamps the resulting interval to [0, 1].
func (s *EmissionSpread) nextSlice() spreadSlice {
	previous, current := s.Advance()
	lo, hi := previous, current
	if lo > hi {
		lo, hi = hi, lo
	}
	return spreadSlice{
		lo:      clamp01(lo),
		hi:      clamp01(hi),
		current: clamp01(current),
		uniform: s.Uniform,
	}
}

// pick returns a coordinate in [0, 1] along the spread axis. Uniform slices sit on
// the current index boundary; others are jittered across the whole slice.
func (sl spreadSlice) pick(rng Rand) float32 {
	if sl.uniform {
		return sl.current
	}
	return randRange(rng, sl.lo, sl.hi)
}
