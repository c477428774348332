package distribution

import (
	"sort"

	"github.com/AdmcCarthy/Stroop-Effect/domain/core"
	"github.com/AdmcCarthy/Stroop-Effect/internal/summary"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// QQPlot holds matched quantiles of two distributions
type QQPlot struct {
	XLabel string  `json:"x_label"`
	YLabel string  `json:"y_label"`
	Points []Point `json:"points"`
	// Least-squares reference line y = Intercept + Slope*x
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// TwoSampleQQ pairs quantiles of a and b at k = min(len a, len b) evenly
// spaced levels from 0 to 1. Equal-sized samples pair their sorted values.
func TwoSampleQQ(a, b []float64, labelA, labelB string) (*QQPlot, error) {
	if len(a) == 0 {
		return nil, core.NewEmptyColumnError(labelA)
	}
	if len(b) == 0 {
		return nil, core.NewEmptyColumnError(labelB)
	}

	k := len(a)
	if len(b) < k {
		k = len(b)
	}
	levels := make([]float64, k)
	if k == 1 {
		levels[0] = 0.5
	} else {
		for i := range levels {
			levels[i] = float64(i) / float64(k-1)
		}
	}

	qa := summary.Quantiles(a, levels...)
	qb := summary.Quantiles(b, levels...)

	plot := &QQPlot{XLabel: labelA, YLabel: labelB, Points: make([]Point, k)}
	for i := range levels {
		plot.Points[i] = Point{X: qa[i], Y: qb[i]}
	}
	plot.fitLine(qa, qb)
	return plot, nil
}

// NormalQQ compares sorted sample values against standard normal
// quantiles at plotting positions (i + 0.5)/n.
func NormalQQ(values []float64, label string) (*QQPlot, error) {
	if len(values) == 0 {
		return nil, core.NewEmptyColumnError(label)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	theoretical := make([]float64, len(sorted))
	plot := &QQPlot{XLabel: "theoretical quantiles", YLabel: label, Points: make([]Point, len(sorted))}
	for i, v := range sorted {
		theoretical[i] = distuv.UnitNormal.Quantile((float64(i) + 0.5) / n)
		plot.Points[i] = Point{X: theoretical[i], Y: v}
	}
	plot.fitLine(theoretical, sorted)
	return plot, nil
}

func (q *QQPlot) fitLine(x, y []float64) {
	if len(x) < 2 || stat.Variance(x, nil) == 0 {
		q.Intercept, q.Slope = 0, 1
		return
	}
	q.Intercept, q.Slope = stat.LinearRegression(x, y, nil, false)
}
