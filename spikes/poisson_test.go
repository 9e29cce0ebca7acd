package spikes

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoissonTrain_BoundedScenario(t *testing.T) {
	// GIVEN rate=20 Hz, duration=1.0s, dt=0.0001s
	rng := rand.New(rand.NewSource(42))
	train := PoissonTrain(rng, 20.0, 1.0, 0.0001)

	// THEN the train is strictly increasing with first spike >= dt and last < duration
	require.NotEmpty(t, train)
	assert.NoError(t, train.Validate(0))
	assert.GreaterOrEqual(t, train[0], 0.0001)
	assert.Less(t, train[len(train)-1], 1.0)
}

func TestPoissonTrain_GapsAtLeastDT(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	dt := 0.0001
	train := PoissonTrain(rng, 500.0, 2.0, dt)

	for i, isi := range train.ISIs() {
		if isi < dt-1e-12 {
			t.Fatalf("interval %d = %g below dt %g", i, isi, dt)
		}
	}
}

func TestPoissonTrain_MeanRateMatches(t *testing.T) {
	// GIVEN a long realisation at 50 Hz
	rng := rand.New(rand.NewSource(42))
	train := PoissonTrain(rng, 50.0, 100.0, 0.0001)

	// THEN the empirical rate is within 10% of the target
	gotRate := float64(len(train)) / 100.0
	assert.InEpsilon(t, 50.0, gotRate, 0.10)
}

func TestPoissonTrain_DurationTooShort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	assert.Empty(t, PoissonTrain(rng, 20.0, 0.0001, 0.0001))
}

func TestPoissonTrain_Deterministic(t *testing.T) {
	a := PoissonTrain(rand.New(rand.NewSource(42)), 20.0, 1.0, 0.0001)
	b := PoissonTrain(rand.New(rand.NewSource(42)), 20.0, 1.0, 0.0001)
	assert.Equal(t, a, b)
}

func TestSharedPoissonProcess_MultiplicityRounds(t *testing.T) {
	// GIVEN a shared process with multiplicity 3 and no jitter
	rng := rand.New(rand.NewSource(42))
	p := NewSharedPoissonProcess(rng, 100.0, 0, 0.0001, 3)

	// WHEN six values are read
	round1 := []float64{p.Next(), p.Next(), p.Next()}
	round2 := []float64{p.Next(), p.Next(), p.Next()}

	// THEN each round repeats one base time and the rounds advance
	assert.Equal(t, round1[0], round1[1])
	assert.Equal(t, round1[0], round1[2])
	assert.Equal(t, round2[0], round2[1])
	assert.Equal(t, round2[0], round2[2])
	assert.Greater(t, round2[0], round1[0])
}

func TestSharedPoissonProcess_SingleStreamIsPoisson(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	dt := 0.0001
	p := NewSharedPoissonProcess(rng, 200.0, 0, dt, 1)

	prev := 0.0
	for i := 0; i < 1000; i++ {
		next := p.Next()
		if next-prev < dt-1e-12 {
			t.Fatalf("read %d: gap %g below dt", i, next-prev)
		}
		prev = next
	}
}

func TestSharedPoissonProcess_JitterStaysCausal(t *testing.T) {
	// GIVEN a jittered shared process with large sigma
	rng := rand.New(rand.NewSource(42))
	dt := 0.0001
	p := NewSharedPoissonProcess(rng, 100.0, 0.05, dt, 2)

	// THEN every emitted time is finite and positive across many rounds
	for i := 0; i < 2000; i++ {
		v := p.Next()
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

func TestSharedPoissonProcess_CorrectsMultiplicity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := NewSharedPoissonProcess(rng, 100.0, 0, 0.0001, 0)
	a := p.Next()
	b := p.Next()
	// multiplicity corrected to 1: consecutive reads advance
	assert.Greater(t, b, a)
}
