package distribution

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
)

// DefaultDensityPoints is the number of positions a KDE curve is sampled at
const DefaultDensityPoints = 64

// Point is one (x, y) sample of a curve
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Density samples a Gaussian kernel density estimate (Scott bandwidth) at
// points positions spanning three bandwidths past the data on either side.
// It returns nil when the sample has no spread.
func Density(values []float64, points int) []Point {
	if len(values) < 2 || points < 2 {
		return nil
	}
	sample := stats.Sample{Xs: values}
	bandwidth := stats.BandwidthScott(sample)
	if bandwidth <= 0 || math.IsNaN(bandwidth) || math.IsInf(bandwidth, 0) {
		return nil
	}

	kde := &stats.KDE{Sample: sample, Bandwidth: bandwidth}
	lo := floats.Min(values) - 3*bandwidth
	hi := floats.Max(values) + 3*bandwidth

	xs := floats.Span(make([]float64, points), lo, hi)
	curve := make([]Point, points)
	for i, x := range xs {
		curve[i] = Point{X: x, Y: kde.PDF(x)}
	}
	return curve
}
