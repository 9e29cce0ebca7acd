package spikes

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// STA computes the spike-triggered average of a membrane potential trace: the
// mean waveform over the window of length w preceding each spike, together
// with the per-sample standard deviation and the full stacked window matrix
// (one row per spike, w/dt columns, each row ending at the spike's grid bin).
//
// Spikes with fewer than w/dt preceding samples get their window zero-padded
// on the left rather than dropped, keeping the row count aligned with the
// spike count at the cost of a bias toward zero for early spikes.
//
// A train with one spike or fewer returns nil results.
func STA(trace []float64, train SpikeTrain, w, dt float64) (avg, std []float64, windows *mat.Dense) {
	if len(train) <= 1 {
		return nil, nil, nil
	}

	g := Grid{DT: dt}
	wBins := g.WindowBins(w)
	windows = mat.NewDense(len(train), wBins, nil)
	for i, t := range train {
		bin := g.Bin(t)
		if wBins < bin {
			windows.SetRow(i, trace[bin-wBins:bin])
		} else {
			row := make([]float64, wBins)
			copy(row[wBins-bin:], trace[:bin])
			windows.SetRow(i, row)
		}
	}

	avg = make([]float64, wBins)
	std = make([]float64, wBins)
	col := make([]float64, len(train))
	for j := 0; j < wBins; j++ {
		mat.Col(col, j, windows)
		avg[j] = stat.Mean(col, nil)
		std[j] = stat.PopStdDev(col, nil)
	}
	return avg, std, windows
}
