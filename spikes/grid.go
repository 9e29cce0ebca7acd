package spikes

import (
	"fmt"
	"math"
)

// DefaultDT is the default discretization step in seconds (0.1 ms), matching
// the usual simulation time step of the data this package analyzes.
const DefaultDT = 0.0001

// Grid defines the fixed time discretization underlying all index conversions.
// Continuous times map to integer bin indices by truncating division by DT.
type Grid struct {
	DT float64 // step in seconds, must be > 0
}

// NewGrid creates a Grid, failing fast on a non-positive step.
func NewGrid(dt float64) (Grid, error) {
	if dt <= 0 {
		return Grid{}, fmt.Errorf("grid step must be positive, got %g", dt)
	}
	return Grid{DT: dt}, nil
}

// Bin returns the bin index containing time t.
func (g Grid) Bin(t float64) int {
	return int(t / g.DT)
}

// NumBins returns the number of bins needed to cover the given duration.
func (g Grid) NumBins(duration float64) int {
	return int(math.Ceil(duration / g.DT))
}

// WindowBins returns the number of whole bins spanned by a window of length w.
func (g Grid) WindowBins(w float64) int {
	return int(w / g.DT)
}
