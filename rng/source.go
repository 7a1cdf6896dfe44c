package rng

import "math/rand"

// Source is the sequential uniform-integer/float generator the collapse
// engine draws from. Every call must be a fresh draw; implementations
// are not required to be safe for concurrent use — a resolve runs
// single-threaded.
type Source interface {
	// UintN returns a value uniformly distributed in [0, n). Panics if
	// n == 0, matching math/rand.Rand.Int63n's contract.
	UintN(n uint32) uint32

	// Float32 returns a value uniformly distributed in [0, hi).
	Float32(hi float32) float32
}

// Std wraps a *rand.Rand to satisfy Source, the default gridwave ships.
type Std struct {
	r *rand.Rand
}

// NewStd builds a Std seeded deterministically from seed. The same seed
// always produces the same resolve outcome for a fixed OptionTable,
// grid, and queue choice.
func NewStd(seed int64) *Std {
	return &Std{r: rand.New(rand.NewSource(seed))}
}

// UintN implements Source.
func (s *Std) UintN(n uint32) uint32 {
	if n == 0 {
		panic("rng: UintN called with n == 0")
	}

	return uint32(s.r.Int63n(int64(n)))
}

// Float32 implements Source.
func (s *Std) Float32(hi float32) float32 {
	return s.r.Float32() * hi
}
