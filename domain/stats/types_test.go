package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout_BlocksAreContiguousAndOrdered(t *testing.T) {
	rows := Layout()
	blocks := Blocks()

	idx := 0
	for _, r := range rows {
		for idx < len(blocks) && blocks[idx] != r.Block {
			idx++
		}
		if idx == len(blocks) {
			t.Fatalf("row %s appears out of block order", r.Kind)
		}
	}
}

func TestLayout_DistributionOrder(t *testing.T) {
	var kinds []StatKind
	for _, r := range Layout() {
		if r.Block == BlockDistribution {
			kinds = append(kinds, r.Kind)
		}
	}
	assert.Equal(t, []StatKind{
		StatMax, StatQ95, StatQ90, StatQ75, StatQ50, StatQ25, StatQ10, StatQ05, StatMin,
	}, kinds)
}

func TestLayout_IsACopy(t *testing.T) {
	rows := Layout()
	rows[0].Label = "changed"
	assert.Equal(t, "samples, n", Layout()[0].Label)
}

func TestQuantileLevel(t *testing.T) {
	p, ok := StatQ95.QuantileLevel()
	assert.True(t, ok)
	assert.Equal(t, 0.95, p)

	_, ok = StatMean.QuantileLevel()
	assert.False(t, ok)
}

func TestSummaryTable_Lookup(t *testing.T) {
	table := &SummaryTable{
		Columns: []string{"a", "b"},
		Rows: []StatRow{
			{Kind: StatCount, Block: BlockHeader, Values: []float64{3, 4}},
			{Kind: StatMean, Block: BlockCentral, Values: []float64{1.5, 2.5}},
		},
	}

	v, ok := table.Value(StatMean, "b")
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	_, ok = table.Value(StatMean, "c")
	assert.False(t, ok)
	_, ok = table.Value(StatMedian, "a")
	assert.False(t, ok)

	assert.Len(t, table.BlockRows(BlockCentral), 1)
	assert.True(t, table.Rows[0].IsCount())
	assert.Equal(t, "", BlockHeader.Title())
	assert.Equal(t, "Dispersion", BlockDispersion.Title())
}
