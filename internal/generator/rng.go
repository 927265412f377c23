package generator

import "math/rand"

// Source supplies uniformly distributed floats in [0, 1).
// It is injected so tests can pin every draw; *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded source for deterministic generation.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform draws a float between lo and hi.
func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// randInt draws an integer in [lo, hi). Returns lo for an empty range.
func randInt(src Source, lo, hi int) int {
	n := hi - lo
	if n <= 0 {
		return lo
	}
	k := int(src.Float64() * float64(n))
	if k >= n {
		k = n - 1
	}
	return lo + k
}
