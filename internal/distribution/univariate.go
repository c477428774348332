package distribution

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AdmcCarthy/Stroop-Effect/domain/core"
	"github.com/AdmcCarthy/Stroop-Effect/domain/dataset"
	"github.com/AdmcCarthy/Stroop-Effect/internal/style"
)

// Options control a univariate distribution plot
type Options struct {
	Scheme          string   // colour scheme name, see style.Names
	Funky           bool     // force the ToddTerje scheme
	Bins            string   // all_values, auto or a positive integer
	Rug             bool     // include rug positions
	FormattingRight bool     // formatting box on the right-hand side
	Lower           *float64 // x-axis truncation, inclusive
	Upper           *float64
	DensityPoints   int
}

// DefaultOptions mirrors the notebook defaults
func DefaultOptions() Options {
	return Options{
		Scheme:          style.DefaultScheme,
		Bins:            BinsAllValues,
		Rug:             true,
		FormattingRight: true,
		DensityPoints:   DefaultDensityPoints,
	}
}

// BoxPosition is the axes-relative anchor of the formatting box
type BoxPosition struct {
	Horizontal float64 `json:"horizontal"`
	Vertical   float64 `json:"vertical"`
}

// Univariate is everything needed to draw a histogram + KDE + rug plot
type Univariate struct {
	Name            string      `json:"name"`
	Title           string      `json:"title"`
	XLabel          string      `json:"x_label"`
	YLabel          string      `json:"y_label"`
	Colors          ColorRoles  `json:"colors"`
	Bins            int         `json:"bins"`
	Histogram       *Histogram  `json:"histogram"`
	Density         []Point     `json:"density,omitempty"`
	Rug             []float64   `json:"rug,omitempty"`
	FormattingNotes string      `json:"formatting_notes"`
	FormattingBox   BoxPosition `json:"formatting_box"`
}

// ColorRoles assigns scheme colours to plot elements
type ColorRoles struct {
	Histogram string `json:"histogram"`
	Density   string `json:"density"`
	Rug       string `json:"rug"`
	Title     string `json:"title"`
	Font      string `json:"font"`
}

// NewUnivariate prepares the distribution plot data for one column
func NewUnivariate(col dataset.Column, opts Options) (*Univariate, error) {
	if col.IsEmpty() {
		return nil, core.NewEmptyColumnError(col.Name)
	}
	scheme, err := style.Resolve(opts.Scheme, opts.Funky)
	if err != nil {
		return nil, err
	}
	if opts.Lower != nil && opts.Upper != nil && *opts.Lower > *opts.Upper {
		return nil, fmt.Errorf("%w: lower %v > upper %v", core.ErrInvalidRange, *opts.Lower, *opts.Upper)
	}

	bins, err := ResolveBins(opts.Bins, col.Values)
	if err != nil {
		return nil, err
	}

	values := truncate(col.Values, opts.Lower, opts.Upper)
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values of %q inside truncation range", core.ErrEmptyColumn, col.Name)
	}

	hist, err := NewHistogram(values, bins)
	if err != nil {
		return nil, err
	}

	points := opts.DensityPoints
	if points <= 0 {
		points = DefaultDensityPoints
	}

	u := &Univariate{
		Name:   col.Name,
		Title:  fmt.Sprintf("Distribution of %s", col.Name),
		XLabel: col.Name,
		YLabel: "Frequency",
		Colors: ColorRoles{
			Histogram: scheme.Fill(),
			Density:   scheme.Primary(),
			Rug:       scheme.Secondary(),
			Title:     style.TitleColor,
			Font:      style.FontColor,
		},
		Bins:            bins,
		Histogram:       hist,
		Density:         Density(values, points),
		FormattingNotes: FormattingNotes(opts.Bins, bins, opts.Lower, opts.Upper),
		FormattingBox:   boxPosition(opts.FormattingRight),
	}
	if opts.Rug {
		u.Title += ", with rug plot"
		u.Rug = sortedValues(values)
	}
	return u, nil
}

// FormattingNotes renders the text box describing how the plot was shaped
func FormattingNotes(rule string, bins int, lower, upper *float64) string {
	var b strings.Builder
	b.WriteString("Formatting:\n")
	if lower != nil {
		b.WriteString("x axis truncated after " + formatBound(*lower) + "\n")
	}
	if upper != nil {
		b.WriteString("x axis truncated by " + formatBound(*upper) + "\n")
	}
	if rule == BinsAuto || rule == "" {
		b.WriteString("bins = automatic")
	} else {
		b.WriteString("bins = " + strconv.Itoa(bins))
	}
	return b.String()
}

func boxPosition(right bool) BoxPosition {
	if right {
		return BoxPosition{Horizontal: 0.845, Vertical: 0.83}
	}
	return BoxPosition{Horizontal: 0.05, Vertical: 0.83}
}

func truncate(values []float64, lower, upper *float64) []float64 {
	if lower == nil && upper == nil {
		return values
	}
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if lower != nil && v < *lower {
			continue
		}
		if upper != nil && v > *upper {
			continue
		}
		out = append(out, v)
	}
	return out
}

func sortedValues(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
