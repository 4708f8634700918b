package random

import "math/rand"

// Source is the randomness used by the generators. It exists as an interface
// so tests can script exact draw sequences. Implementations must be safe for
// concurrent use.
type Source interface {
	// IntInRange returns a uniform random integer in [min, max] inclusive.
	IntInRange(min, max int) int
	// Pick returns a uniform random index in [0, n).
	Pick(n int) int
}

type source struct{}

// NewSource returns a Source backed by the shared math/rand generator.
func NewSource() Source {
	return source{}
}

func (source) IntInRange(min, max int) int {
	return min + rand.Intn(max-min+1)
}

func (source) Pick(n int) int {
	return rand.Intn(n)
}
