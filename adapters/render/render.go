package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	domainStats "github.com/AdmcCarthy/Stroop-Effect/domain/stats"
	"github.com/AdmcCarthy/Stroop-Effect/internal/style"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Format selects an output representation
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Heading is the overall title of a rendered table
const Heading = "Descriptive Statistics"

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown output format %q (text, markdown, html)", s)
}

// Write renders the table to w in the given format
func Write(w io.Writer, table *domainStats.SummaryTable, format Format) error {
	switch format {
	case FormatText:
		return Text(w, table)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(table))
		return err
	case FormatHTML:
		_, err := w.Write(HTML(table))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}

// FormatValue prints a cell with exactly the table precision; counts are integers
func FormatValue(row domainStats.StatRow, v float64, precision int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if row.IsCount() {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Text writes an aligned plain-text table
func Text(w io.Writer, table *domainStats.SummaryTable) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, Heading+"\t")
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(table.Columns, "\t"))
	for _, block := range domainStats.Blocks() {
		rows := table.BlockRows(block)
		if len(rows) == 0 {
			continue
		}
		if title := block.Title(); title != "" {
			fmt.Fprintf(tw, "%s\t\n", title)
		}
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t\n", r.Label, strings.Join(cells(r, table.Precision), "\t"))
		}
	}
	return tw.Flush()
}

// Markdown renders one GitHub table per block under a level-2 heading
func Markdown(table *domainStats.SummaryTable) string {
	var b strings.Builder
	b.WriteString("## " + Heading + "\n")

	for _, block := range domainStats.Blocks() {
		rows := table.BlockRows(block)
		if len(rows) == 0 {
			continue
		}
		b.WriteString("\n")
		if title := block.Title(); title != "" {
			b.WriteString("### " + title + "\n\n")
		}
		b.WriteString("| |")
		for _, name := range table.Columns {
			b.WriteString(" " + escapeCell(name) + " |")
		}
		b.WriteString("\n|---|")
		for range table.Columns {
			b.WriteString("---:|")
		}
		b.WriteString("\n")
		for _, r := range rows {
			b.WriteString("| " + escapeCell(r.Label) + " |")
			for _, c := range cells(r, table.Precision) {
				b.WriteString(" " + c + " |")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// HTML converts the Markdown rendering into a self-contained fragment
// suitable for embedding in a notebook cell. Raw HTML is never passed through.
func HTML(table *domainStats.SummaryTable) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(Markdown(table)))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	body := markdown.Render(doc, renderer)

	var out bytes.Buffer
	fmt.Fprintf(&out, "<div class=\"descriptive-statistics\" style=\"color:%s\">\n", style.TableColor)
	fmt.Fprintf(&out, "<style>.descriptive-statistics h2,.descriptive-statistics h3{color:%s}</style>\n", style.FontColor)
	out.Write(body)
	out.WriteString("</div>\n")
	return out.Bytes()
}

func cells(r domainStats.StatRow, precision int) []string {
	out := make([]string, len(r.Values))
	for i, v := range r.Values {
		out[i] = FormatValue(r, v, precision)
	}
	return out
}

// cellEscaper backslash-escapes characters that would otherwise split a
// table cell or open inline HTML
var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"<", `\<`,
	">", `\>`,
	"&", `\&`,
)

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}
