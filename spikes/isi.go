package spikes

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Irregularity measures over the inter-spike intervals of a train. All return
// 0 when the train yields no intervals; the pairwise measures (CV2, LV, IR,
// SI) also return 0 for a single interval, since their sums over adjacent
// pairs are empty.

// CV returns the coefficient of variation of the inter-spike intervals:
// std(ISI)/mean(ISI). A perfectly regular train gives exactly 0.
func CV(train SpikeTrain) float64 {
	isis := train.ISIs()
	if len(isis) == 0 {
		return 0
	}
	return stat.PopStdDev(isis, nil) / stat.Mean(isis, nil)
}

// CV2 returns the localized coefficient of variation (Holt et al. 1996):
// the mean over adjacent interval pairs of 2|a-b|/(a+b).
func CV2(train SpikeTrain) float64 {
	isis := train.ISIs()
	n := len(isis)
	if n == 0 {
		return 0
	}
	total := 0.0
	for i := 0; i < n-1; i++ {
		total += math.Abs(isis[i]-isis[i+1]) / (isis[i] + isis[i+1])
	}
	return total * 2 / float64(n)
}

// LV returns the local variation measure (Shinomoto et al. 2003):
// 3/N * sum of ((a-b)/(a+b))^2 over adjacent interval pairs.
func LV(train SpikeTrain) float64 {
	isis := train.ISIs()
	n := len(isis)
	if n == 0 {
		return 0
	}
	total := 0.0
	for i := 0; i < n-1; i++ {
		r := (isis[i] - isis[i+1]) / (isis[i] + isis[i+1])
		total += r * r
	}
	return total * 3 / float64(n)
}

// IR returns the interval ratio irregularity measure (Davies et al. 2006):
// 1/(N*ln4) * sum of |ln(a/b)| over adjacent interval pairs.
func IR(train SpikeTrain) float64 {
	isis := train.ISIs()
	n := len(isis)
	if n == 0 {
		return 0
	}
	total := 0.0
	for i := 0; i < n-1; i++ {
		total += math.Abs(math.Log(isis[i] / isis[i+1]))
	}
	return total / (float64(n) * math.Log(4))
}

// SI returns the surprise-based irregularity measure (Miura et al. 2006):
// -1/(2N(1-ln2)) * sum of ln(4ab/(a+b)^2) over adjacent interval pairs.
func SI(train SpikeTrain) float64 {
	isis := train.ISIs()
	n := len(isis)
	if n == 0 {
		return 0
	}
	total := 0.0
	for i := 0; i < n-1; i++ {
		sum := isis[i] + isis[i+1]
		total += math.Log(4 * isis[i] * isis[i+1] / (sum * sum))
	}
	return -total / (2 * float64(n) * (1 - math.Ln2))
}
