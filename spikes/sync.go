package spikes

import (
	"math"

	"github.com/sirupsen/logrus"
)

// SyncEnsemble generates n bounded spike trains of the given rate and
// duration where floor(n*sync) trains are independently jittered copies of a
// single Poisson template and the rest are fully independent realisations.
//
// A synchrony fraction outside [0, 1] is corrected to 1 with a warning
// (historical behavior of the bounded generator; the unbounded NewSyncGroup
// corrects to 0 instead).
func SyncEnsemble(rng *PartitionedRNG, n int, rate, sync, sigma, duration, dt float64) Ensemble {
	if sync < 0 || sync > 1 {
		logrus.Warnf("synchrony %g outside [0, 1]; setting to 1", sync)
		sync = 1
	}

	linked := int(math.Floor(float64(n) * sync))
	template := PoissonTrain(rng.ForSubsystem(SubsystemTemplate), rate, duration, dt)
	jitterRNG := rng.ForSubsystem(SubsystemJitter)

	ensemble := make(Ensemble, 0, n)
	for i := 0; i < linked; i++ {
		ensemble = append(ensemble, AddGaussJitter(jitterRNG, template, sigma, dt))
	}
	for i := linked; i < n; i++ {
		ensemble = append(ensemble, PoissonTrain(rng.ForSubsystem(SubsystemIndependent(i)), rate, duration, dt))
	}
	return ensemble
}

// SyncGroup holds n unbounded, independently advanceable spike streams:
// floor(n*sync) of them read from one shared interval process (each read
// applying its own jitter draw), the remainder from their own processes.
type SyncGroup struct {
	N         int
	Rate      float64
	Synchrony float64
	Sigma     float64
	DT        float64

	streams []SpikeStream
}

// NewSyncGroup builds the unbounded variant of the synchrony composer. The
// shared process advances to a new base interval only after being read once
// per linked stream, so interleaved consumption of the linked streams yields
// correlated trains.
//
// A synchrony fraction outside [0, 1] is corrected to 0 with a warning
// (historical behavior of the unbounded generator, asymmetric with
// SyncEnsemble's correction to 1).
func NewSyncGroup(rng *PartitionedRNG, n int, rate, sync, sigma, dt float64) *SyncGroup {
	if sync < 0 || sync > 1 {
		logrus.Warnf("synchrony %g outside [0, 1]; setting to 0", sync)
		sync = 0
	}

	linked := int(math.Floor(float64(n) * sync))
	streams := make([]SpikeStream, 0, n)
	if linked > 0 {
		shared := NewSharedPoissonProcess(rng.ForSubsystem(SubsystemTemplate), rate, sigma, dt, linked)
		for i := 0; i < linked; i++ {
			streams = append(streams, shared)
		}
	}
	for i := linked; i < n; i++ {
		streams = append(streams, NewSharedPoissonProcess(rng.ForSubsystem(SubsystemIndependent(i)), rate, 0, dt, 1))
	}

	return &SyncGroup{
		N:         n,
		Rate:      rate,
		Synchrony: sync,
		Sigma:     sigma,
		DT:        dt,
		streams:   streams,
	}
}

// Streams returns the n live spike streams. The first floor(n*sync) entries
// share one underlying process; reading any of them advances the shared
// multiplicity counter.
func (g *SyncGroup) Streams() []SpikeStream {
	return g.streams
}
