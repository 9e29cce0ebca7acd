package spikes

import (
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// FiringSlope returns the mean and per-spike values of the membrane potential
// slope at each firing time: (trace[spike] - trace[spike-window]) / window,
// where each spike's window is w capped at its preceding inter-spike interval
// minus dt (the first spike's "interval" is its own time), and never below dt.
//
// Values are in potential units per second. Fewer than two spikes returns
// (0, nil).
func FiringSlope(trace []float64, train SpikeTrain, w, dt float64) (float64, []float64) {
	if w < dt {
		w = dt
	}
	if len(train) < 2 {
		return 0, nil
	}

	intervals := append([]float64{train[0]}, train.ISIs()...)
	slopes := make([]float64, len(train))
	for i, t := range train {
		window := math.Min(w, intervals[i]-dt)
		if window < dt {
			window = dt
		}
		bin := int(t / dt)
		lo := bin - int(window/dt)
		if lo < 0 {
			// a spike at the very start of the trace leaves no room for
			// even the minimum window
			lo = 0
		}
		slopes[i] = (trace[bin] - trace[lo]) / window
	}
	return stat.Mean(slopes, nil), slopes
}

// NormFiringSlope normalizes the pre-spike firing slopes into [0, 1] using
// analytic bounds from an exponential leak model with membrane time constant
// tau and firing threshold th.
//
// Spikes occurring before a full window w has elapsed are discarded. The
// reset potential is read from the trace one sample after the first remaining
// spike. Per inter-spike interval, the maximum attainable slope is
// (th-reset)/w, and the minimum is derived from the weakest constant input
// that still reaches threshold over the interval, projected forward to the
// window's starting point. One normalized slope is produced per interval
// (the first remaining spike only anchors the bounds).
//
// Results outside [0, 1] are left unclamped: they signal a mismatch between
// the leak model and the supplied trace, which the caller should see.
func NormFiringSlope(trace []float64, train SpikeTrain, th, tau, w, dt float64) (float64, []float64) {
	if w < dt {
		w = dt
	}
	if len(train) < 2 {
		return 0, nil
	}

	// discard spikes that occurred too early for a full window
	kept := make(SpikeTrain, 0, len(train))
	for _, t := range train {
		if t > w {
			kept = append(kept, t)
		}
	}
	if len(kept) < 2 {
		return 0, nil
	}

	_, slopes := FiringSlope(trace, kept, w, dt)
	reset := trace[int(kept[0]/dt)+1]
	slopeMax := (th - reset) / w

	isis := kept.ISIs()
	normed := make([]float64, len(isis))
	for i, isi := range isis {
		minInput := (th - reset) / (1 - math.Exp(-isi/tau))
		lowStart := reset + minInput*(1-math.Exp(-(isi-w)/tau))
		slopeMin := (th - lowStart) / w
		normed[i] = (slopes[i+1] - slopeMin) / (slopeMax - slopeMin)
	}
	return stat.Mean(normed, nil), normed
}

// NPSS is the deprecated spike-triggered-average based normalized pre-spike
// slope. Retained for compatibility with older analysis scripts; use
// NormFiringSlope instead.
//
// Slopes are computed per STA window in grid units, with the final window
// sample forced to the threshold and the first spike's window dropped.
// Negative normalized values are clamped to 0; values above 1 are not
// (legacy asymmetry, preserved as-is).
func NPSS(trace []float64, train SpikeTrain, th, w, dt float64) (float64, []float64) {
	logrus.Warn("NPSS is deprecated; use NormFiringSlope")
	if len(train) <= 1 {
		return 0, []float64{0}
	}

	_, _, windows := STA(trace, train, w, dt)
	rows, cols := windows.Dims()
	wBins := w/dt - 1
	reset := trace[int(train[0]/dt)+1]
	isis := train.ISIs()

	normed := make([]float64, 0, rows-1)
	for i := 1; i < rows; i++ {
		// mean of consecutive window diffs with the end forced to threshold
		slope := (th - windows.At(i, 0)) / float64(cols-1)
		low := (th - reset) / (isis[i-1] / dt)
		high := (th - reset) / wBins
		norm := (slope - low) / (high - low)
		if norm < 0 {
			norm = 0
		}
		normed = append(normed, norm)
	}
	return stat.Mean(normed, nil), normed
}
