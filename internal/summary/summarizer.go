package summary

import (
	"math"

	"github.com/AdmcCarthy/Stroop-Effect/domain/core"
	"github.com/AdmcCarthy/Stroop-Effect/domain/dataset"
	domainStats "github.com/AdmcCarthy/Stroop-Effect/domain/stats"

	"github.com/montanaflynn/stats"
)

// DefaultPrecision is the number of decimal places used when none is given
const DefaultPrecision = 2

// Summarizer computes descriptive statistics tables
type Summarizer struct{}

// NewSummarizer creates a new summarizer
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize builds the table for the named frame columns. With no names,
// every column is summarized in frame order.
func (s *Summarizer) Summarize(frame *dataset.Frame, names []string, precision int) (*domainStats.SummaryTable, error) {
	if precision < 0 {
		return nil, core.NewInvalidPrecisionError(precision)
	}
	cols, err := frame.Select(names...)
	if err != nil {
		return nil, err
	}
	return s.SummarizeColumns(cols, precision)
}

// SummarizeColumns builds the table for explicit columns
func (s *Summarizer) SummarizeColumns(cols []dataset.Column, precision int) (*domainStats.SummaryTable, error) {
	if precision < 0 {
		return nil, core.NewInvalidPrecisionError(precision)
	}
	if len(cols) == 0 {
		return nil, core.ErrInsufficientData
	}

	computed := make([]map[domainStats.StatKind]float64, len(cols))
	names := make([]string, len(cols))
	for i, c := range cols {
		values, err := computeColumn(c)
		if err != nil {
			return nil, err
		}
		computed[i] = values
		names[i] = c.Name
	}

	table := &domainStats.SummaryTable{
		Columns:   names,
		Precision: precision,
	}
	for _, def := range domainStats.Layout() {
		row := domainStats.StatRow{
			Kind:   def.Kind,
			Block:  def.Block,
			Label:  def.Label,
			Values: make([]float64, len(cols)),
		}
		for i := range cols {
			v := computed[i][def.Kind]
			if !row.IsCount() {
				v = Round(v, precision)
			}
			row.Values[i] = v
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// computeColumn evaluates every statistic of the layout, unrounded
func computeColumn(c dataset.Column) (map[domainStats.StatKind]float64, error) {
	if c.IsEmpty() {
		return nil, core.NewEmptyColumnError(c.Name)
	}
	data := c.Values

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return nil, err
	}

	// Bessel-corrected estimators are undefined below two observations
	stdDev, variance := math.NaN(), math.NaN()
	if len(data) > 1 {
		if stdDev, err = stats.StandardDeviationSample(data); err != nil {
			return nil, err
		}
		if variance, err = stats.SampleVariance(data); err != nil {
			return nil, err
		}
	}

	mad, err := meanAbsoluteDeviation(data, mean)
	if err != nil {
		return nil, err
	}

	sorted := sortedCopy(data)
	values := map[domainStats.StatKind]float64{
		domainStats.StatCount:    float64(len(data)),
		domainStats.StatMean:     mean,
		domainStats.StatMedian:   median,
		domainStats.StatStdDev:   stdDev,
		domainStats.StatVariance: variance,
		domainStats.StatRange:    max - min,
		domainStats.StatMAD:      mad,
		domainStats.StatMax:      max,
		domainStats.StatMin:      min,
	}
	for _, def := range domainStats.Layout() {
		if p, ok := def.Kind.QuantileLevel(); ok {
			values[def.Kind] = Percentile(sorted, p)
		}
	}
	values[domainStats.StatIQR] = values[domainStats.StatQ75] - values[domainStats.StatQ25]

	return values, nil
}

// meanAbsoluteDeviation averages |x - mean|
func meanAbsoluteDeviation(data []float64, mean float64) (float64, error) {
	deviations := make([]float64, len(data))
	for i, x := range data {
		deviations[i] = math.Abs(x - mean)
	}
	return stats.Mean(deviations)
}
