package spikes

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// sampleInterval draws one exponential inter-spike interval with mean 1/rate,
// clamped below at dt to prevent spikes stacking in a single grid bin.
func sampleInterval(rng *rand.Rand, rate, dt float64) float64 {
	interval := rng.ExpFloat64() / rate
	if interval < dt {
		interval = dt
	}
	return interval
}

// PoissonTrain generates a single bounded realisation of a Poisson process:
// spike times with exponentially distributed inter-spike intervals of mean
// 1/rate, all strictly below duration, with every interval at least dt.
//
// The first interval is resampled until it fits within the duration, so the
// returned train always contains at least one spike when the parameters admit
// one. Parameters that cannot fit a single spike (duration <= dt) are treated
// as invalid: a warning is surfaced and an empty train returned.
func PoissonTrain(rng *rand.Rand, rate, duration, dt float64) SpikeTrain {
	if duration <= dt {
		logrus.Warnf("poisson train: duration %gs cannot fit a spike at grid step %gs; returning empty train", duration, dt)
		return nil
	}

	var train SpikeTrain
	for len(train) == 0 {
		interval := sampleInterval(rng, rate, dt)
		if interval < duration {
			train = append(train, interval)
		}
	}
	for train[len(train)-1] < duration {
		train = append(train, train[len(train)-1]+sampleInterval(rng, rate, dt))
	}
	// drop the spike that crossed the duration in the loop condition
	return train[:len(train)-1]
}

// SpikeStream is an unbounded, lazily advanced sequence of spike times.
// Reading is destructive and sequential; a single stream must not be read
// from multiple goroutines without external synchronization.
type SpikeStream interface {
	// Next returns the next spike time in seconds.
	Next() float64
}

// SharedPoissonProcess is the state machine behind unbounded spike streams:
// an exponential-interval process whose base time advances only after being
// read `multiplicity` times. Each read returns the current base time plus a
// fresh Gaussian jitter draw, so sharing one process across k streams yields
// k correlated trains, each spike round forming a Gaussian pulse packet
// centred on the base time with spread sigma.
//
// A multiplicity of 1 with zero sigma is a plain unbounded Poisson stream.
type SharedPoissonProcess struct {
	rng   *rand.Rand
	rate  float64 // events per second
	sigma float64 // jitter standard deviation, seconds
	dt    float64 // grid step, seconds

	multiplicity int
	reads        int     // reads served for the current base time
	t            float64 // current base time
	prevT        float64 // previous base time
}

// NewSharedPoissonProcess creates a process emitting jittered spike times at
// the given rate. A multiplicity below 1 is corrected to 1 with a warning.
func NewSharedPoissonProcess(rng *rand.Rand, rate, sigma, dt float64, multiplicity int) *SharedPoissonProcess {
	if multiplicity < 1 {
		logrus.Warnf("shared poisson process: multiplicity %d below 1; setting to 1", multiplicity)
		multiplicity = 1
	}
	return &SharedPoissonProcess{
		rng:          rng,
		rate:         rate,
		sigma:        sigma,
		dt:           dt,
		multiplicity: multiplicity,
		reads:        multiplicity, // first read advances to a new base time
	}
}

// Next returns the next spike time. The base time advances to a new interval
// only once every multiplicity reads; each read applies its own jitter draw,
// bounded below so no emitted time precedes the previous base time by more
// than dt.
func (p *SharedPoissonProcess) Next() float64 {
	if p.reads >= p.multiplicity {
		p.prevT = p.t
		p.t += sampleInterval(p.rng, p.rate, p.dt)
		p.reads = 1
	} else {
		p.reads++
	}

	if p.sigma <= 0 {
		return p.t
	}
	jitter := p.rng.NormFloat64() * p.sigma
	if p.t+jitter < p.prevT+p.dt {
		jitter = p.prevT + p.dt - p.t
	}
	return p.t + jitter
}
