// Package spikes provides spike-train generation and statistical analysis for
// point-process neural data: sequences of strictly increasing event times.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - train.go: the SpikeTrain and Ensemble types and their invariants
//   - poisson.go: bounded Poisson realisations and the shared interval process
//     that backs correlated unbounded streams
//   - sync.go: the synchrony composer that assembles populations of
//     jittered-template and independent trains
//
// # Architecture
//
// Generation flows Poisson generator -> jitter operator -> synchrony composer,
// producing ensembles of input trains for an external simulation. Analysis is
// independent of generation: a membrane potential trace plus a spike train feed
// the spike-triggered average (sta.go), the pre-spike slope estimators
// (slope.go), the inter-spike-interval irregularity measures (isi.go), and the
// binning/PSTH conversions (binning.go).
//
// All continuous times are mapped onto a fixed grid of step dt by truncating
// division (grid.go). Randomness is never drawn from the global source: every
// generator takes an injected *rand.Rand, and PartitionedRNG (rng.go) derives
// isolated deterministic streams per subsystem from a single master seed.
package spikes
