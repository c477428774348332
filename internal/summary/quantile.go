package summary

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// Percentile returns the p-quantile (p in [0,1]) of an ascending slice,
// interpolating linearly between the two closest ranks at h = (n-1)p.
// It returns NaN for an empty slice or p outside [0,1].
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 || p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Quantiles evaluates several levels against unsorted data in one pass
func Quantiles(data []float64, levels ...float64) []float64 {
	sorted := sortedCopy(data)
	out := make([]float64, len(levels))
	for i, p := range levels {
		out[i] = Percentile(sorted, p)
	}
	return out
}

// float64 carries at most 17 significant decimal digits
const significantDigits = 17

// Round rounds half away from zero to the given number of decimal places.
// NaN and infinities are returned unchanged, as is any value that already
// has fewer significant digits than places asks for.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
		return x
	}
	if places > significantDigits-int(math.Floor(math.Log10(math.Abs(x)))) {
		return x
	}
	rounded, err := stats.Round(x, places)
	if err != nil || math.IsNaN(rounded) || math.IsInf(rounded, 0) {
		return x
	}
	return rounded
}

func sortedCopy(data []float64) []float64 {
	cp := make([]float64, len(data))
	copy(cp, data)
	sort.Float64s(cp)
	return cp
}
