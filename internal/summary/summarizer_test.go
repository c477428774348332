package summary

import (
	"math"
	"testing"

	"github.com/AdmcCarthy/Stroop-Effect/domain/core"
	"github.com/AdmcCarthy/Stroop-Effect/domain/dataset"
	domainStats "github.com/AdmcCarthy/Stroop-Effect/domain/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func summarizeOne(t *testing.T, values []float64, precision int) *domainStats.SummaryTable {
	t.Helper()
	table, err := NewSummarizer().SummarizeColumns([]dataset.Column{dataset.NewColumn("x", values)}, precision)
	require.NoError(t, err)
	return table
}

func cell(t *testing.T, table *domainStats.SummaryTable, kind domainStats.StatKind) float64 {
	t.Helper()
	v, ok := table.Value(kind, table.Columns[0])
	require.True(t, ok, "missing row %s", kind)
	return v
}

func TestSummarize_OneToFive(t *testing.T) {
	table := summarizeOne(t, []float64{1, 2, 3, 4, 5}, DefaultPrecision)

	expected := map[domainStats.StatKind]float64{
		domainStats.StatCount:    5,
		domainStats.StatMean:     3,
		domainStats.StatMedian:   3,
		domainStats.StatStdDev:   1.58,
		domainStats.StatVariance: 2.5,
		domainStats.StatRange:    4,
		domainStats.StatIQR:      2,
		domainStats.StatMAD:      1.2,
		domainStats.StatMax:      5,
		domainStats.StatQ95:      4.8,
		domainStats.StatQ90:      4.6,
		domainStats.StatQ75:      4,
		domainStats.StatQ50:      3,
		domainStats.StatQ25:      2,
		domainStats.StatQ10:      1.4,
		domainStats.StatQ05:      1.2,
		domainStats.StatMin:      1,
	}
	for kind, want := range expected {
		assert.InDelta(t, want, cell(t, table, kind), tolerance, "statistic %s", kind)
	}
}

func TestSummarize_IdenticalValues(t *testing.T) {
	table := summarizeOne(t, []float64{5, 5, 5, 5}, DefaultPrecision)

	for _, kind := range []domainStats.StatKind{
		domainStats.StatStdDev, domainStats.StatVariance, domainStats.StatRange,
		domainStats.StatIQR, domainStats.StatMAD,
	} {
		assert.Equal(t, 0.0, cell(t, table, kind), "statistic %s", kind)
	}
	for _, spec := range domainStats.Layout() {
		if spec.Block == domainStats.BlockDistribution {
			assert.Equal(t, 5.0, cell(t, table, spec.Kind), "statistic %s", spec.Kind)
		}
	}
}

func TestSummarize_EvenLengthMedian(t *testing.T) {
	table := summarizeOne(t, []float64{4, 1, 3, 2}, DefaultPrecision)

	assert.Equal(t, 2.5, cell(t, table, domainStats.StatMedian))
	assert.Equal(t, 2.5, cell(t, table, domainStats.StatQ50))
}

func TestSummarize_Precision(t *testing.T) {
	tests := []struct {
		precision int
		stdDev    float64
		q95       float64
	}{
		{0, 2, 5},
		{1, 1.6, 4.8},
		{3, 1.581, 4.8},
	}

	for _, tt := range tests {
		table := summarizeOne(t, []float64{1, 2, 3, 4, 5}, tt.precision)
		assert.Equal(t, tt.precision, table.Precision)
		assert.InDelta(t, tt.stdDev, cell(t, table, domainStats.StatStdDev), tolerance, "precision %d", tt.precision)
		assert.InDelta(t, tt.q95, cell(t, table, domainStats.StatQ95), tolerance, "precision %d", tt.precision)
	}
}

func TestSummarize_VeryHighPrecisionKeepsValues(t *testing.T) {
	for _, precision := range []int{15, 300, 400} {
		table := summarizeOne(t, []float64{1e10, 2e10, 3e10}, precision)
		for _, row := range table.Rows {
			for _, v := range row.Values {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s at precision %d", row.Label, precision)
			}
		}
		assert.Equal(t, 2e10, cell(t, table, domainStats.StatMean), "precision %d", precision)
	}
}

func TestSummarize_CountIsNeverRounded(t *testing.T) {
	values := make([]float64, 1234)
	for i := range values {
		values[i] = float64(i) / 7
	}
	table := summarizeOne(t, values, 0)
	assert.Equal(t, 1234.0, cell(t, table, domainStats.StatCount))
}

func TestSummarize_RowOrderIsStable(t *testing.T) {
	data := []float64{12.079, 16.791, 9.564, 8.63, 14.669, 12.238, 14.692, 8.987}
	first := summarizeOne(t, data, 2)

	for i := 0; i < 20; i++ {
		again := summarizeOne(t, data, 2)
		require.Equal(t, len(first.Rows), len(again.Rows))
		for j := range first.Rows {
			assert.Equal(t, first.Rows[j].Kind, again.Rows[j].Kind)
			assert.Equal(t, first.Rows[j].Values, again.Rows[j].Values)
		}
	}

	layout := domainStats.Layout()
	require.Len(t, first.Rows, len(layout))
	for i, spec := range layout {
		assert.Equal(t, spec.Kind, first.Rows[i].Kind)
		assert.Equal(t, spec.Label, first.Rows[i].Label)
	}
}

func TestSummarize_RangeAndIQRNonNegative(t *testing.T) {
	samples := [][]float64{
		{-3, -1, -2},
		{0.1},
		{100, -100, 50, -50, 0},
		{1e9, 1e-9, 3},
	}
	for _, s := range samples {
		table := summarizeOne(t, s, 4)
		assert.GreaterOrEqual(t, cell(t, table, domainStats.StatRange), 0.0)
		assert.GreaterOrEqual(t, cell(t, table, domainStats.StatIQR), 0.0)
	}
}

func TestSummarize_SingleValueHasUndefinedSpread(t *testing.T) {
	table := summarizeOne(t, []float64{7.25}, 2)

	assert.True(t, math.IsNaN(cell(t, table, domainStats.StatStdDev)))
	assert.True(t, math.IsNaN(cell(t, table, domainStats.StatVariance)))
	assert.Equal(t, 7.25, cell(t, table, domainStats.StatMean))
	assert.Equal(t, 0.0, cell(t, table, domainStats.StatRange))
	assert.Equal(t, 0.0, cell(t, table, domainStats.StatMAD))
}

func TestSummarize_MultipleColumns(t *testing.T) {
	frame := dataset.NewFrame(
		dataset.NewColumn("congruent", []float64{1, 2, 3}),
		dataset.NewColumn("incongruent", []float64{10, 20, 30, 40}),
	)

	table, err := NewSummarizer().Summarize(frame, []string{"incongruent", "congruent"}, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"incongruent", "congruent"}, table.Columns)
	count, _ := table.Row(domainStats.StatCount)
	assert.Equal(t, []float64{4, 3}, count.Values)
	mean, _ := table.Row(domainStats.StatMean)
	assert.Equal(t, []float64{25, 2}, mean.Values)
}

func TestSummarize_AllColumnsWhenNoneNamed(t *testing.T) {
	frame := dataset.NewFrame(
		dataset.NewColumn("a", []float64{1}),
		dataset.NewColumn("b", []float64{2}),
	)

	table, err := NewSummarizer().Summarize(frame, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, table.Columns)
}

func TestSummarize_Errors(t *testing.T) {
	frame := dataset.NewFrame(
		dataset.NewColumn("full", []float64{1, 2}),
		dataset.NewColumn("empty", nil),
	)
	s := NewSummarizer()

	tests := []struct {
		name      string
		names     []string
		precision int
		want      error
	}{
		{"negative precision", []string{"full"}, -1, core.ErrInvalidPrecision},
		{"empty column", []string{"full", "empty"}, 2, core.ErrEmptyColumn},
		{"unknown column", []string{"nope"}, 2, core.ErrUnknownColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := s.Summarize(frame, tt.names, tt.precision)
			assert.Nil(t, table)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, core.IsInputError(err))
		})
	}
}

func TestSummarizeColumns_NoColumns(t *testing.T) {
	_, err := NewSummarizer().SummarizeColumns(nil, 2)
	assert.ErrorIs(t, err, core.ErrInsufficientData)
}
