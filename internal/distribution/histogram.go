package distribution

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/AdmcCarthy/Stroop-Effect/domain/core"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bin rules accepted alongside explicit positive integers
const (
	BinsAllValues = "all_values"
	BinsAuto      = "auto"
)

// MaxBins bounds every resolved bin count
const MaxBins = 10000

// Histogram holds equal-width bin counts; Dividers has len(Counts)+1 edges
type Histogram struct {
	Dividers []float64 `json:"dividers"`
	Counts   []float64 `json:"counts"`
}

// ResolveBins turns a bin rule into a bin count for the given sample.
// all_values uses one bin per integer step between min and max, auto uses
// Sturges' rule, anything else must parse as a positive integer.
func ResolveBins(rule string, values []float64) (int, error) {
	if len(values) == 0 {
		return 0, core.ErrEmptyColumn
	}
	switch strings.TrimSpace(rule) {
	case BinsAllValues:
		min, max := floats.Min(values), floats.Max(values)
		return maxInt(int(max)-int(min), 1), nil
	case BinsAuto, "":
		return int(math.Ceil(math.Log2(float64(len(values))))) + 1, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(rule))
	if err != nil || n <= 0 {
		return 0, core.NewInvalidBinsError(rule)
	}
	return n, nil
}

// NewHistogram counts values into bins equal-width bins spanning [min, max]
func NewHistogram(values []float64, bins int) (*Histogram, error) {
	if len(values) == 0 {
		return nil, core.ErrEmptyColumn
	}
	if bins <= 0 || bins > MaxBins {
		return nil, core.NewInvalidBinsError(strconv.Itoa(bins))
	}
	if err := checkFinite(values); err != nil {
		return nil, err
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram treats the last edge as exclusive
	counting := make([]float64, len(dividers))
	copy(counting, dividers)
	counting[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, counting, sorted, nil)
	return &Histogram{Dividers: dividers, Counts: counts}, nil
}

// Total returns the number of counted observations
func (h *Histogram) Total() float64 {
	return floats.Sum(h.Counts)
}

func checkFinite(values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value %v", core.ErrInvalidRange, v)
		}
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
