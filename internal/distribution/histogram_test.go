package distribution

import (
	"math"
	"testing"

	"github.com/AdmcCarthy/Stroop-Effect/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBins(t *testing.T) {
	values := []float64{8.63, 12.1, 22.33, 14.48}

	tests := []struct {
		rule string
		want int
	}{
		{BinsAllValues, 14},
		{BinsAuto, 3},
		{"", 3},
		{"7", 7},
		{" 5 ", 5},
	}
	for _, tt := range tests {
		got, err := ResolveBins(tt.rule, values)
		require.NoError(t, err, "rule %q", tt.rule)
		assert.Equal(t, tt.want, got, "rule %q", tt.rule)
	}
}

func TestResolveBins_AllValuesAtLeastOne(t *testing.T) {
	got, err := ResolveBins(BinsAllValues, []float64{3.1, 3.9})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestResolveBins_Invalid(t *testing.T) {
	for _, rule := range []string{"0", "-3", "many"} {
		_, err := ResolveBins(rule, []float64{1, 2})
		assert.ErrorIs(t, err, core.ErrInvalidBins, "rule %q", rule)
	}
	_, err := ResolveBins(BinsAuto, nil)
	assert.ErrorIs(t, err, core.ErrEmptyColumn)
}

func TestResolveBins_CapsBinCount(t *testing.T) {
	_, err := ResolveBins(BinsAllValues, []float64{0, 1e13})
	assert.ErrorIs(t, err, core.ErrInvalidBins)

	_, err = ResolveBins("2000000000", []float64{1, 2})
	assert.ErrorIs(t, err, core.ErrInvalidBins)

	got, err := ResolveBins(BinsAllValues, []float64{0, MaxBins})
	require.NoError(t, err)
	assert.Equal(t, MaxBins, got)
}

func TestResolveBins_NonFiniteValues(t *testing.T) {
	for _, bad := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		for _, rule := range []string{BinsAllValues, BinsAuto, "4"} {
			_, err := ResolveBins(rule, []float64{1, 2, bad})
			assert.ErrorIs(t, err, core.ErrInvalidRange, "rule %q value %v", rule, bad)
		}
	}
}

func TestNewHistogram_CountsEveryValue(t *testing.T) {
	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 4, 4}
	h, err := NewHistogram(values, 3)
	require.NoError(t, err)

	require.Len(t, h.Dividers, 4)
	require.Len(t, h.Counts, 3)
	assert.Equal(t, 1.0, h.Dividers[0])
	assert.Equal(t, 4.0, h.Dividers[3])
	assert.Equal(t, []float64{1, 2, 7}, h.Counts)
	assert.Equal(t, float64(len(values)), h.Total())
}

func TestNewHistogram_ConstantValues(t *testing.T) {
	h, err := NewHistogram([]float64{5, 5, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, h.Total())
	assert.Equal(t, 4.5, h.Dividers[0])
	assert.Equal(t, 5.5, h.Dividers[2])
}

func TestNewHistogram_Errors(t *testing.T) {
	_, err := NewHistogram(nil, 3)
	assert.ErrorIs(t, err, core.ErrEmptyColumn)
	_, err = NewHistogram([]float64{1}, 0)
	assert.ErrorIs(t, err, core.ErrInvalidBins)
	_, err = NewHistogram([]float64{1, 2}, MaxBins+1)
	assert.ErrorIs(t, err, core.ErrInvalidBins)
	_, err = NewHistogram([]float64{1, math.Inf(1)}, 3)
	assert.ErrorIs(t, err, core.ErrInvalidRange)
	_, err = NewHistogram([]float64{math.NaN(), 2}, 3)
	assert.ErrorIs(t, err, core.ErrInvalidRange)
}
