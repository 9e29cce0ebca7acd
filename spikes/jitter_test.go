package spikes

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGaussJitter_ZeroSigmaIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	train := SpikeTrain{0.1, 0.2, 0.3}
	assert.Equal(t, train, AddGaussJitter(rng, train, 0, 0.0001))
}

func TestAddGaussJitter_PreservesLengthAndOrder(t *testing.T) {
	// GIVEN a dense regular train and a sigma large enough to reorder spikes
	rng := rand.New(rand.NewSource(42))
	dt := 0.0001
	train := make(SpikeTrain, 100)
	for i := range train {
		train[i] = float64(i+1) * 0.001
	}

	out := AddGaussJitter(rng, train, 0.005, dt)

	// THEN the result has the same length, is sorted, and has no gap below dt
	require.Len(t, out, len(train))
	assert.True(t, sort.Float64sAreSorted(out))
	for i, gap := range out.ISIs() {
		if gap < dt-1e-12 {
			t.Fatalf("gap %d = %g below dt %g", i, gap, dt)
		}
	}
}

func TestAddGaussJitter_SmallSigmaKeepsTimesClose(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sigma := 0.0001
	train := SpikeTrain{0.1, 0.3, 0.5, 0.7, 0.9}

	out := AddGaussJitter(rng, train, sigma, 0.0001)

	require.Len(t, out, len(train))
	for i := range train {
		assert.InDelta(t, train[i], out[i], 6*sigma)
	}
}

func TestAddGaussJitter_Deterministic(t *testing.T) {
	train := SpikeTrain{0.1, 0.2, 0.3, 0.4}
	a := AddGaussJitter(rand.New(rand.NewSource(7)), train, 0.01, 0.0001)
	b := AddGaussJitter(rand.New(rand.NewSource(7)), train, 0.01, 0.0001)
	assert.Equal(t, a, b)
}

func TestAddGaussJitter_SingleSpike(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	out := AddGaussJitter(rng, SpikeTrain{0.5}, 0.01, 0.0001)
	assert.Len(t, out, 1)
}

func TestAddGaussJitter_DoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	train := SpikeTrain{0.1, 0.2, 0.3}
	original := train.Copy()
	AddGaussJitter(rng, train, 0.01, 0.0001)
	assert.Equal(t, original, train)
}
