package core

import "math/rand/v2"

// Source is the randomness the simulations draw from.
// *rand.Rand from math/rand/v2 satisfies it; tests substitute scripted sources.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// NewRNG returns a deterministic PCG-backed generator for the given seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

var _ Source = (*rand.Rand)(nil)
