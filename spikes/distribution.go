package spikes

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SlopeDistribution computes the histogram of consecutive membrane potential
// differences, grouping slope values that fall within the same precision-wide
// bin. Zero differences, which stem from refractory flat segments, are
// removed when removeZero is set. Returns the bin counts and the nbins+1
// dividers bounding them.
func SlopeDistribution(trace []float64, precision float64, removeZero bool) (counts, dividers []float64, err error) {
	diffs := make([]float64, 0, len(trace))
	for i := 1; i < len(trace); i++ {
		dv := trace[i] - trace[i-1]
		if removeZero && dv == 0 {
			continue
		}
		diffs = append(diffs, dv)
	}
	return histogramOfDiffs(diffs, precision)
}

// PositiveSlopeDistribution is SlopeDistribution restricted to strictly
// positive potential differences (depolarizing segments only).
func PositiveSlopeDistribution(trace []float64, precision float64) (counts, dividers []float64, err error) {
	diffs := make([]float64, 0, len(trace))
	for i := 1; i < len(trace); i++ {
		if dv := trace[i] - trace[i-1]; dv > 0 {
			diffs = append(diffs, dv)
		}
	}
	return histogramOfDiffs(diffs, precision)
}

func histogramOfDiffs(diffs []float64, precision float64) (counts, dividers []float64, err error) {
	if precision <= 0 {
		return nil, nil, fmt.Errorf("slope distribution: precision must be positive, got %g", precision)
	}
	if len(diffs) == 0 {
		return nil, nil, nil
	}
	sorted := append([]float64(nil), diffs...)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	nbins := int((hi - lo) / precision)
	if nbins < 1 {
		nbins = 1
	}
	dividers = make([]float64, nbins+1)
	width := (hi - lo) / float64(nbins)
	for i := range dividers {
		dividers[i] = lo + float64(i)*width
	}
	// stat.Histogram requires the last divider to exceed the largest value
	dividers[nbins] = math.Nextafter(hi, math.Inf(1))

	counts = stat.Histogram(nil, dividers, sorted, nil)
	return counts, dividers, nil
}

// SpikePeriodHist histograms spike times by their phase within the period of
// a driving frequency: the duration is split into periods of 1/freq, each
// period into nbins phase bins, and spikes are counted per phase bin across
// all whole periods. Returns the left phase edges in [0, 1) and the counts.
func SpikePeriodHist(times SpikeTrain, freq, duration float64, nbins int, dt float64) (left, counts []float64) {
	period := int(1 / freq / dt) // period length in grid steps
	binWidth := float64(period) / float64(nbins)
	periods := int(duration / dt / float64(period))

	counts = make([]float64, nbins)
	left = make([]float64, nbins)
	for i := range counts {
		left[i] = float64(i) / float64(nbins)
		for p := 0; p < periods; p++ {
			start := float64(p * period)
			loEdge := start + float64(i)*binWidth
			hiEdge := start + float64(i+1)*binWidth - 1
			for _, t := range times {
				step := t / dt
				if step >= loEdge && step < hiEdge {
					counts[i]++
				}
			}
		}
	}
	return left, counts
}
