package spikes

import "fmt"

// TimesToBin converts a spike train into a binary vector on a grid of width
// dt: each element is 1 if at least one spike falls in that bin, 0 otherwise.
// Multiple spikes in a bin collapse to 1. If duration is positive the vector
// covers it fully (a partial last bin included) and spikes beyond it are
// dropped; otherwise the length is inferred from the last spike.
func TimesToBin(train SpikeTrain, dt, duration float64) []float64 {
	g := Grid{DT: dt}
	if len(train) == 0 {
		if duration <= 0 {
			return nil
		}
		return make([]float64, g.NumBins(duration))
	}

	length := g.Bin(train[len(train)-1]) + 1
	if duration > 0 {
		length = g.NumBins(duration)
	}
	binned := make([]float64, length)
	for _, t := range train {
		if idx := g.Bin(t); idx < length {
			binned[idx] = 1
		}
	}
	return binned
}

// TimesToBinMulti applies TimesToBin per train across an ensemble-like
// container (Ensemble, slice of trains, or a map of named trains). When
// duration is unspecified, one shared duration is inferred for all trains:
// the maximum spike time across the whole container plus dt.
func TimesToBinMulti(spikes any, dt, duration float64) ([][]float64, error) {
	trains, err := toTrains(spikes)
	if err != nil {
		return nil, err
	}
	if duration <= 0 {
		flat, err := flatten(spikes)
		if err != nil {
			return nil, err
		}
		duration = maxOf(flat) + dt
	}
	binned := make([][]float64, len(trains))
	for i, train := range trains {
		binned[i] = TimesToBin(train, dt, duration)
	}
	return binned, nil
}

// PSTH counts spikes per fixed-width bin across all supplied trains,
// returning the left edges of the bins and the counts. Unlike TimesToBin, no
// information is lost to presence-collapsing. The bins cover the full
// duration, a partial last bin included. The bin width is never smaller
// than the grid step dt. Accepts the same container shapes as TimesToBinMulti
// plus a single flat train and arbitrarily nested slices; an unsupported
// container is a fatal TypeMismatch for the call.
func PSTH(spikes any, bin, dt, duration float64) (edges, counts []float64, err error) {
	if bin < dt {
		bin = dt
	}
	flat, err := flatten(spikes)
	if err != nil {
		return nil, nil, err
	}
	if len(flat) == 0 {
		return nil, nil, nil
	}
	if duration <= 0 {
		duration = maxOf(flat) + dt
	}

	g := Grid{DT: bin}
	nbins := g.NumBins(duration)
	edges = make([]float64, nbins)
	counts = make([]float64, nbins)
	for b := range edges {
		edges[b] = float64(b) * bin
	}
	for _, t := range flat {
		if idx := g.Bin(t); idx >= 0 && idx < nbins {
			counts[idx]++
		}
	}
	return edges, counts, nil
}

// toTrains normalizes the supported container shapes into a slice of trains.
func toTrains(spikes any) ([]SpikeTrain, error) {
	switch v := spikes.(type) {
	case Ensemble:
		return v, nil
	case []SpikeTrain:
		return v, nil
	case [][]float64:
		trains := make([]SpikeTrain, len(v))
		for i, st := range v {
			trains[i] = st
		}
		return trains, nil
	case map[string]SpikeTrain:
		trains := make([]SpikeTrain, 0, len(v))
		for _, st := range v {
			trains = append(trains, st)
		}
		return trains, nil
	case map[string][]float64:
		trains := make([]SpikeTrain, 0, len(v))
		for _, st := range v {
			trains = append(trains, st)
		}
		return trains, nil
	default:
		return nil, fmt.Errorf("ensemble, slice of trains or map of trains expected, got %T", spikes)
	}
}

// flatten recursively collects all spike times in a (possibly nested)
// container into one flat slice.
func flatten(spikes any) ([]float64, error) {
	switch v := spikes.(type) {
	case float64:
		return []float64{v}, nil
	case SpikeTrain:
		return v, nil
	case []float64:
		return v, nil
	case Ensemble:
		return flattenTrains(v), nil
	case []SpikeTrain:
		return flattenTrains(v), nil
	case [][]float64:
		var flat []float64
		for _, st := range v {
			flat = append(flat, st...)
		}
		return flat, nil
	case map[string]SpikeTrain:
		var flat []float64
		for _, st := range v {
			flat = append(flat, st...)
		}
		return flat, nil
	case map[string][]float64:
		var flat []float64
		for _, st := range v {
			flat = append(flat, st...)
		}
		return flat, nil
	case []any:
		var flat []float64
		for _, item := range v {
			sub, err := flatten(item)
			if err != nil {
				return nil, err
			}
			flat = append(flat, sub...)
		}
		return flat, nil
	default:
		return nil, fmt.Errorf("spike time container expected, got %T", spikes)
	}
}

func flattenTrains(trains []SpikeTrain) []float64 {
	var flat []float64
	for _, st := range trains {
		flat = append(flat, st...)
	}
	return flat
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
