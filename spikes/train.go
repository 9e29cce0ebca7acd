package spikes

import "fmt"

// SpikeTrain is an ordered sequence of non-negative spike times in seconds.
// Times are strictly increasing; empty and single-spike trains are valid.
type SpikeTrain []float64

// Ensemble is an ordered collection of spike trains sharing generation
// parameters but independently owned.
type Ensemble []SpikeTrain

// ISIs returns the inter-spike intervals, the consecutive differences of the
// spike times. A train with fewer than two spikes has no intervals.
func (st SpikeTrain) ISIs() []float64 {
	if len(st) < 2 {
		return nil
	}
	isis := make([]float64, len(st)-1)
	for i := 1; i < len(st); i++ {
		isis[i-1] = st[i] - st[i-1]
	}
	return isis
}

// Validate checks the train invariants: non-negative, strictly increasing
// times with every gap at least minGap (pass 0 to check ordering only).
func (st SpikeTrain) Validate(minGap float64) error {
	for i, t := range st {
		if t < 0 {
			return fmt.Errorf("spike %d: negative time %g", i, t)
		}
		if i == 0 {
			continue
		}
		if gap := t - st[i-1]; gap < minGap || t <= st[i-1] {
			return fmt.Errorf("spike %d: gap %g below minimum %g", i, t-st[i-1], minGap)
		}
	}
	return nil
}

// Copy returns an independently owned copy of the train.
func (st SpikeTrain) Copy() SpikeTrain {
	out := make(SpikeTrain, len(st))
	copy(out, st)
	return out
}
