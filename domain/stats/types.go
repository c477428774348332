package stats

// ============================================================================
// TABLE LAYOUT (Fixed, never reorder)
// ============================================================================

// Block groups summary rows for display
type Block string

const (
	BlockHeader       Block = "header"
	BlockCentral      Block = "central_tendency"
	BlockDispersion   Block = "dispersion"
	BlockDistribution Block = "distribution"
)

// Blocks lists every block in display order
func Blocks() []Block {
	return []Block{BlockHeader, BlockCentral, BlockDispersion, BlockDistribution}
}

// Title returns the heading drawn above a block; the header block has none
func (b Block) Title() string {
	switch b {
	case BlockCentral:
		return "Central Tendency"
	case BlockDispersion:
		return "Dispersion"
	case BlockDistribution:
		return "Distribution"
	default:
		return ""
	}
}

// StatKind identifies the statistic a row represents
type StatKind string

const (
	StatCount    StatKind = "count"
	StatMean     StatKind = "mean"
	StatMedian   StatKind = "median"
	StatStdDev   StatKind = "std_dev"
	StatVariance StatKind = "variance"
	StatRange    StatKind = "range"
	StatIQR      StatKind = "iqr"
	StatMAD      StatKind = "mean_abs_dev"
	StatMax      StatKind = "max"
	StatQ95      StatKind = "q95"
	StatQ90      StatKind = "q90"
	StatQ75      StatKind = "q75"
	StatQ50      StatKind = "q50"
	StatQ25      StatKind = "q25"
	StatQ10      StatKind = "q10"
	StatQ05      StatKind = "q05"
	StatMin      StatKind = "min"
)

// quantileLevels maps percentile rows to their probability
var quantileLevels = map[StatKind]float64{
	StatQ95: 0.95,
	StatQ90: 0.90,
	StatQ75: 0.75,
	StatQ50: 0.50,
	StatQ25: 0.25,
	StatQ10: 0.10,
	StatQ05: 0.05,
}

// QuantileLevel returns p for percentile rows
func (k StatKind) QuantileLevel() (float64, bool) {
	p, ok := quantileLevels[k]
	return p, ok
}

// RowSpec describes one row of the table
type RowSpec struct {
	Kind  StatKind
	Block Block
	Label string
}

// layout is the canonical row order of every SummaryTable
var layout = []RowSpec{
	{StatCount, BlockHeader, "samples, n"},

	{StatMean, BlockCentral, "mean"},
	{StatMedian, BlockCentral, "median"},

	{StatStdDev, BlockDispersion, "stan. dev., s"},
	{StatVariance, BlockDispersion, "variance, s^2"},
	{StatRange, BlockDispersion, "range"},
	{StatIQR, BlockDispersion, "IQR"},
	{StatMAD, BlockDispersion, "mean abs. dev."},

	{StatMax, BlockDistribution, "maximum"},
	{StatQ95, BlockDistribution, "Q(0.95)"},
	{StatQ90, BlockDistribution, "Q(0.90)"},
	{StatQ75, BlockDistribution, "Q(0.75)"},
	{StatQ50, BlockDistribution, "Q(0.50)"},
	{StatQ25, BlockDistribution, "Q(0.25)"},
	{StatQ10, BlockDistribution, "Q(0.10)"},
	{StatQ05, BlockDistribution, "Q(0.05)"},
	{StatMin, BlockDistribution, "minimum"},
}

// Layout returns a copy of the canonical row order
func Layout() []RowSpec {
	out := make([]RowSpec, len(layout))
	copy(out, layout)
	return out
}

// ============================================================================
// SUMMARY TABLE
// ============================================================================

// StatRow holds one statistic with a value per summarized column
type StatRow struct {
	Kind   StatKind  `json:"kind"`
	Block  Block     `json:"block"`
	Label  string    `json:"label"`
	Values []float64 `json:"values"` // One per column, same order as SummaryTable.Columns
}

// IsCount reports whether the row holds sample counts rather than measurements
func (r StatRow) IsCount() bool {
	return r.Kind == StatCount
}

// SummaryTable is the ordered descriptive statistics of one or more columns
type SummaryTable struct {
	Columns   []string  `json:"columns"`
	Precision int       `json:"precision"`
	Rows      []StatRow `json:"rows"`
}

// Row finds a row by kind
func (t *SummaryTable) Row(kind StatKind) (StatRow, bool) {
	for _, r := range t.Rows {
		if r.Kind == kind {
			return r, true
		}
	}
	return StatRow{}, false
}

// BlockRows returns the rows of one block in table order
func (t *SummaryTable) BlockRows(b Block) []StatRow {
	var rows []StatRow
	for _, r := range t.Rows {
		if r.Block == b {
			rows = append(rows, r)
		}
	}
	return rows
}

// Value returns a single cell
func (t *SummaryTable) Value(kind StatKind, column string) (float64, bool) {
	row, ok := t.Row(kind)
	if !ok {
		return 0, false
	}
	for i, name := range t.Columns {
		if name == column {
			return row.Values[i], true
		}
	}
	return 0, false
}
