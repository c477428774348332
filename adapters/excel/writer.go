package excel

import (
	"fmt"
	"io"
	"log"
	"math"
	"strings"

	domainStats "github.com/AdmcCarthy/Stroop-Effect/domain/stats"
	"github.com/AdmcCarthy/Stroop-Effect/internal/style"

	"github.com/xuri/excelize/v2"
)

// SummarySheet is the sheet name summary workbooks are written to
const SummarySheet = "Summary"

// SummaryWriter exports summary tables as XLSX workbooks
type SummaryWriter struct{}

// NewSummaryWriter creates a new summary writer
func NewSummaryWriter() *SummaryWriter {
	return &SummaryWriter{}
}

// Save writes the workbook to path
func (w *SummaryWriter) Save(table *domainStats.SummaryTable, path string) error {
	f, err := w.Build(table)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	log.Printf("[SummaryWriter] Wrote %d rows for %d columns to %s", len(table.Rows), len(table.Columns), path)
	return nil
}

// Write streams the workbook to out
func (w *SummaryWriter) Write(table *domainStats.SummaryTable, out io.Writer) error {
	f, err := w.Build(table)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Build lays the table out on a single sheet: a header row of column
// names, then each block under its title.
func (w *SummaryWriter) Build(table *domainStats.SummaryTable) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	styles, err := newSheetStyles(f, table.Precision)
	if err != nil {
		f.Close()
		return nil, err
	}

	row := 1
	for i, name := range table.Columns {
		if err := setCell(f, i+2, row, name, styles.header); err != nil {
			f.Close()
			return nil, err
		}
	}

	for _, block := range domainStats.Blocks() {
		rows := table.BlockRows(block)
		if len(rows) == 0 {
			continue
		}
		if title := block.Title(); title != "" {
			row++
			if err := setCell(f, 1, row, title, styles.title); err != nil {
				f.Close()
				return nil, err
			}
		}
		for _, r := range rows {
			row++
			if err := setCell(f, 1, row, r.Label, styles.label); err != nil {
				f.Close()
				return nil, err
			}
			valueStyle := styles.value
			if r.IsCount() {
				valueStyle = styles.count
			}
			for i, v := range r.Values {
				var cell interface{} = v
				if math.IsNaN(v) {
					cell = "NaN"
				}
				if err := setCell(f, i+2, row, cell, valueStyle); err != nil {
					f.Close()
					return nil, err
				}
			}
		}
	}

	if err := f.SetColWidth(SummarySheet, "A", "A", 18); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

type sheetStyles struct {
	header, title, label, value, count int
}

// Excel displays at most 30 decimal places
const maxDisplayDecimals = 30

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func newSheetStyles(f *excelize.File, precision int) (sheetStyles, error) {
	var s sheetStyles
	var err error

	tableColor := hexColor(style.TableColor)
	fontColor := hexColor(style.FontColor)
	valueFormat := "0"
	if precision > 0 {
		valueFormat = "0." + strings.Repeat("0", minInt(precision, maxDisplayDecimals))
	}
	countFormat := "0"

	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: tableColor},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return s, err
	}
	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 12, Color: fontColor},
	}); err != nil {
		return s, err
	}
	if s.label, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: tableColor},
	}); err != nil {
		return s, err
	}
	if s.value, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Color: tableColor},
		Alignment:    &excelize.Alignment{Horizontal: "center"},
		CustomNumFmt: &valueFormat,
	}); err != nil {
		return s, err
	}
	if s.count, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Color: tableColor},
		Alignment:    &excelize.Alignment{Horizontal: "center"},
		CustomNumFmt: &countFormat,
	}); err != nil {
		return s, err
	}
	return s, nil
}

func setCell(f *excelize.File, col, row int, value interface{}, styleID int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(SummarySheet, cell, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", cell, err)
	}
	return f.SetCellStyle(SummarySheet, cell, cell, styleID)
}

func hexColor(c string) string {
	return strings.TrimPrefix(c, "#")
}
