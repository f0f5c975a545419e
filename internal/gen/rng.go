package gen

// Stage salts. Each generation stage derives its own Stream from the world
// seed plus one of these, so stages stay independent and the whole pipeline
// is a pure function of (width, height, seed, config). Changing a salt
// changes every downstream draw for that stage.
const (
	saltColumns     uint32 = 0x1B873593
	saltPeaks       uint32 = 0x2545F491
	saltTransition  uint32 = 0x38B34AE5
	saltCaves       uint32 = 0x4C9277B5
	saltOres        uint32 = 0x5AB3F68D
	saltDen         uint32 = 0x6D2A71C3
	saltDenClusters uint32 = 0x7E1D239B
	saltTrees       uint32 = 0x8F3A65D1

	saltBroad       uint32 = 0x9A175CB7
	saltMesa        uint32 = 0xA3C591E3
	saltContinental uint32 = 0xB49D2AF5
	saltRolling     uint32 = 0xC571EE39
	saltRidge       uint32 = 0xD6B8A447
)

// Stream is a small deterministic LCG (Knuth's MMIX constants) used for
// stage-local randomness. Nothing in generation may read from a process-wide
// random source or the clock.
type Stream struct {
	state int64
}

// NewStream derives a stream from the world seed and a stage salt.
func NewStream(seed, salt uint32) *Stream {
	return &Stream{state: int64(seed)*341873128712 ^ int64(salt)*132897987541}
}

func (s *Stream) next() uint64 {
	s.state = s.state*6364136223846793005 + 1442695040888963407
	return uint64(s.state)
}

// Float64 returns a uniform value in [0,1).
func (s *Stream) Float64() float64 {
	return float64(s.next()>>11) / float64(1<<53)
}

// Range returns a uniform value in [lo,hi).
func (s *Stream) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}

// IntN returns a uniform int in [0,n); n must be positive.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int((s.next() >> 33) % uint64(n))
}

// IntRange returns a uniform int in [lo,hi] inclusive.
func (s *Stream) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.IntN(hi-lo+1)
}
