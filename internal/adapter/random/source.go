package random

import (
	"math/rand"
	"time"
)

// Source draws uniform integers from a seeded math/rand generator.
type Source struct {
	rng *rand.Rand
}

// NewSource seeds the generator. A zero seed picks one from the clock.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
