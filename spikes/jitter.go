package spikes

import (
	"math/rand"
	"sort"
)

// AddGaussJitter perturbs every spike with an independent zero-mean Gaussian
// offset of standard deviation sigma, re-sorts, and enforces a minimum gap of
// dt between adjacent spikes. sigma = 0 returns the input train unchanged.
//
// The gap enforcement is a correction pass, not a resampling: the smallest
// interval is widened by exactly dt until all intervals are at least dt. Each
// correction strictly increases the minimum gap, so the pass terminates. The
// result is a new monotonic train of the same length as the input.
func AddGaussJitter(rng *rand.Rand, train SpikeTrain, sigma, dt float64) SpikeTrain {
	if sigma == 0 {
		return train
	}

	jittered := make(SpikeTrain, len(train))
	for i, t := range train {
		jittered[i] = t + rng.NormFloat64()*sigma
	}
	sort.Float64s(jittered)
	if len(jittered) < 2 {
		return jittered
	}

	intervals := jittered.ISIs()
	for {
		minIdx := 0
		for i, gap := range intervals {
			if gap < intervals[minIdx] {
				minIdx = i
			}
		}
		if intervals[minIdx] >= dt {
			break
		}
		intervals[minIdx] += dt
	}

	// rebuild from the corrected intervals, anchored at the first spike
	out := make(SpikeTrain, len(jittered))
	out[0] = jittered[0]
	for i, gap := range intervals {
		out[i+1] = out[i] + gap
	}
	return out
}
