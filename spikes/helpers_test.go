package spikes

import "math/rand"

// newTestRNG returns a fixed-seed RNG so statistical tests are reproducible.
func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
