package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/AdmcCarthy/Stroop-Effect/domain/dataset"
	domainStats "github.com/AdmcCarthy/Stroop-Effect/domain/stats"
	"github.com/AdmcCarthy/Stroop-Effect/internal/summary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(t *testing.T, precision int, cols ...dataset.Column) *domainStats.SummaryTable {
	t.Helper()
	tbl, err := summary.NewSummarizer().SummarizeColumns(cols, precision)
	require.NoError(t, err)
	return tbl
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":         FormatText,
		"TEXT":     FormatText,
		"md":       FormatMarkdown,
		"markdown": FormatMarkdown,
		"html":     FormatHTML,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}

func TestFormatValue(t *testing.T) {
	count := domainStats.StatRow{Kind: domainStats.StatCount}
	mean := domainStats.StatRow{Kind: domainStats.StatMean}

	assert.Equal(t, "20", FormatValue(count, 20, 3))
	assert.Equal(t, "3.00", FormatValue(mean, 3, 2))
	assert.Equal(t, "3", FormatValue(mean, 3, 0))
	assert.Equal(t, "1.581", FormatValue(mean, 1.581, 3))
	assert.Equal(t, "NaN", FormatValue(mean, math.NaN(), 2))
}

func TestText(t *testing.T) {
	tbl := table(t, 2, dataset.NewColumn("x", []float64{1, 2, 3, 4, 5}))

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, tbl))
	out := buf.String()

	assert.Contains(t, out, Heading)
	assert.Contains(t, out, "Central Tendency")
	assert.Contains(t, out, "Dispersion")
	assert.Contains(t, out, "Distribution")

	lines := strings.Split(out, "\n")
	var meanLine string
	for _, l := range lines {
		if strings.Contains(l, "mean") && !strings.Contains(l, "abs") {
			meanLine = l
		}
	}
	assert.True(t, strings.HasSuffix(strings.TrimRight(meanLine, " "), "3.00"), "mean line %q", meanLine)
	assert.Less(t, strings.Index(out, "maximum"), strings.Index(out, "minimum"))
}

func TestMarkdown(t *testing.T) {
	tbl := table(t, 1,
		dataset.NewColumn("congruent", []float64{1, 2, 3}),
		dataset.NewColumn("incongruent", []float64{4, 5, 6, 7}),
	)

	md := Markdown(tbl)

	assert.True(t, strings.HasPrefix(md, "## Descriptive Statistics\n"))
	assert.Contains(t, md, "| | congruent | incongruent |")
	assert.Contains(t, md, "| samples, n | 3 | 4 |")
	assert.Contains(t, md, "| mean | 2.0 | 5.5 |")
	assert.Contains(t, md, "### Dispersion")
	assert.Equal(t, 4, strings.Count(md, "|---|"))
}

func TestHTML(t *testing.T) {
	tbl := table(t, 2, dataset.NewColumn("x", []float64{1, 2, 3, 4, 5}))

	out := string(HTML(tbl))

	assert.True(t, strings.HasPrefix(out, "<div class=\"descriptive-statistics\""))
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "Descriptive Statistics</h2>")
	assert.Contains(t, out, "3.00")
	assert.True(t, strings.HasSuffix(out, "</div>\n"))
}

func TestHTML_EscapesColumnNames(t *testing.T) {
	name := "<img src=x onerror=alert(1)>"
	tbl := table(t, 2, dataset.NewColumn(name, []float64{1, 2, 3}))

	out := string(HTML(tbl))

	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "&lt;img src=x onerror=alert(1)&gt;")
	assert.Contains(t, Markdown(tbl), `| \<img src=x onerror=alert(1)\> |`)
}

func TestWrite_Dispatch(t *testing.T) {
	tbl := table(t, 2, dataset.NewColumn("x", []float64{1, 2}))

	for _, f := range []Format{FormatText, FormatMarkdown, FormatHTML} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, tbl, f))
		assert.NotZero(t, buf.Len(), f)
	}
	assert.Error(t, Write(&bytes.Buffer{}, tbl, Format("pdf")))
}
