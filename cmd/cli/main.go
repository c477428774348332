package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/AdmcCarthy/Stroop-Effect/adapters/excel"
	"github.com/AdmcCarthy/Stroop-Effect/adapters/render"
	"github.com/AdmcCarthy/Stroop-Effect/app"
	"github.com/AdmcCarthy/Stroop-Effect/domain/dataset"
	"github.com/AdmcCarthy/Stroop-Effect/internal/config"
	"github.com/AdmcCarthy/Stroop-Effect/internal/distribution"
	"github.com/AdmcCarthy/Stroop-Effect/internal/errors"
	"github.com/AdmcCarthy/Stroop-Effect/internal/summary"

	"github.com/spf13/cobra"
)

func main() {
	config.LoadEnv()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var sheet string

	rootCmd := &cobra.Command{
		Use:           "stroop",
		Short:         "Descriptive statistics and distribution summaries for tabular data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", excel.DefaultSheet, "Worksheet to read from .xlsx files")

	rootCmd.AddCommand(
		newSummarizeCmd(&sheet),
		newQQCmd(&sheet),
		newHistCmd(&sheet),
		newExportCmd(&sheet),
		newReportCmd(&sheet),
	)
	return rootCmd
}

func newSummarizeCmd(sheet *string) *cobra.Command {
	var precision int
	var format string

	cmd := &cobra.Command{
		Use:   "summarize [file] [columns...]",
		Short: "Print a descriptive statistics table",
		Long: `Summarize numeric columns of a CSV or XLSX file.

With no columns every numeric column is summarized.

Example: stroop summarize stroopdata.csv Congruent Incongruent --precision 3 --format markdown`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			return runSummarize(cmd.OutOrStdout(), args[0], *sheet, args[1:], precision, f)
		},
	}

	cmd.Flags().IntVar(&precision, "precision", defaultPrecision(), "Decimal places")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|markdown|html")
	return cmd
}

func newQQCmd(sheet *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "qq [file] [column-a] [column-b]",
		Short: "Quantile-quantile comparison of two columns, or one column against the normal",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQQ(cmd.OutOrStdout(), args[0], *sheet, args[1:], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newHistCmd(sheet *string) *cobra.Command {
	opts := distribution.DefaultOptions()
	var lower, upper float64
	var noRug, asJSON bool

	cmd := &cobra.Command{
		Use:   "hist [file] [column]",
		Short: "Histogram, KDE and rug data for one column",
		Long: `Compute univariate distribution plot data.

Bins may be all_values (one bin per integer step), auto or a positive integer.

Example: stroop hist stroopdata.csv Congruent --bins auto --lower 8 --upper 20`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("lower") {
				opts.Lower = &lower
			}
			if cmd.Flags().Changed("upper") {
				opts.Upper = &upper
			}
			opts.Rug = !noRug
			return runHist(cmd.OutOrStdout(), args[0], *sheet, args[1], opts, asJSON)
		},
	}

	cmd.Flags().StringVar(&opts.Bins, "bins", envOr("HIST_BINS", distribution.BinsAllValues), "Bin rule: all_values|auto|N")
	cmd.Flags().StringVar(&opts.Scheme, "scheme", envOr("COLOR_SCHEME", opts.Scheme), "Colour scheme")
	cmd.Flags().BoolVar(&opts.Funky, "funky", false, "Use the ToddTerje colour scheme")
	cmd.Flags().BoolVar(&noRug, "no-rug", false, "Omit rug positions")
	cmd.Flags().BoolVar(&opts.FormattingRight, "formatting-right", true, "Place the formatting box on the right")
	cmd.Flags().Float64Var(&lower, "lower", 0, "Truncate the x axis below this value")
	cmd.Flags().Float64Var(&upper, "upper", 0, "Truncate the x axis above this value")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a text histogram")
	return cmd
}

func newExportCmd(sheet *string) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "export [file] [out.xlsx] [columns...]",
		Short: "Write the descriptive statistics table to an Excel workbook",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.OutOrStdout(), args[0], *sheet, args[1], args[2:], precision)
		},
	}

	cmd.Flags().IntVar(&precision, "precision", defaultPrecision(), "Decimal places")
	return cmd
}

func newReportCmd(sheet *string) *cobra.Command {
	var precision int
	var qq bool

	cmd := &cobra.Command{
		Use:   "report [file] [columns...]",
		Short: "Summary table plus distribution data for every column",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := distribution.DefaultOptions()
			opts.Bins = envOr("HIST_BINS", opts.Bins)
			opts.Scheme = envOr("COLOR_SCHEME", opts.Scheme)
			return runReport(cmd.Context(), cmd.OutOrStdout(), args[0], *sheet, app.ReportRequest{
				Columns:   args[1:],
				Precision: precision,
				Plot:      opts,
				QQ:        qq,
			})
		},
	}

	cmd.Flags().IntVar(&precision, "precision", defaultPrecision(), "Decimal places")
	cmd.Flags().BoolVar(&qq, "qq", false, "Compare the first two columns with a QQ plot")
	return cmd
}

func runSummarize(out io.Writer, file, sheet string, columns []string, precision int, format render.Format) error {
	frame, err := loadFrame(file, sheet)
	if err != nil {
		return err
	}

	table, err := summary.NewSummarizer().Summarize(frame, columns, precision)
	if err != nil {
		return err
	}
	return render.Write(out, table, format)
}

func runQQ(out io.Writer, file, sheet string, columns []string, asJSON bool) error {
	frame, err := loadFrame(file, sheet)
	if err != nil {
		return err
	}
	cols, err := frame.Select(columns...)
	if err != nil {
		return err
	}

	var plot *distribution.QQPlot
	if len(cols) == 1 {
		plot, err = distribution.NormalQQ(cols[0].Values, cols[0].Name)
	} else {
		plot, err = distribution.TwoSampleQQ(cols[0].Values, cols[1].Values, cols[0].Name, cols[1].Name)
	}
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(out, plot)
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t\n", plot.XLabel, plot.YLabel)
	for _, p := range plot.Points {
		fmt.Fprintf(tw, "%.4f\t%.4f\t\n", p.X, p.Y)
	}
	fmt.Fprintf(tw, "\nreference line: y = %.4f + %.4f x\n", plot.Intercept, plot.Slope)
	return tw.Flush()
}

func runHist(out io.Writer, file, sheet, column string, opts distribution.Options, asJSON bool) error {
	frame, err := loadFrame(file, sheet)
	if err != nil {
		return err
	}
	col, err := frame.Column(column)
	if err != nil {
		return err
	}

	u, err := distribution.NewUnivariate(col, opts)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(out, u)
	}

	fmt.Fprintln(out, u.Title)
	peak := 0.0
	for _, c := range u.Histogram.Counts {
		if c > peak {
			peak = c
		}
	}
	for i, c := range u.Histogram.Counts {
		bar := 0
		if peak > 0 {
			bar = int(c / peak * 40)
		}
		fmt.Fprintf(out, "[%8.3f, %8.3f) %4.0f %s\n",
			u.Histogram.Dividers[i], u.Histogram.Dividers[i+1], c, strings.Repeat("#", bar))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, u.FormattingNotes)
	return nil
}

func runExport(out io.Writer, file, sheet, target string, columns []string, precision int) error {
	frame, err := loadFrame(file, sheet)
	if err != nil {
		return err
	}

	table, err := summary.NewSummarizer().Summarize(frame, columns, precision)
	if err != nil {
		return err
	}

	if err := excel.NewSummaryWriter().Save(table, target); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s (%d columns)\n", target, len(table.Columns))
	return nil
}

func runReport(ctx context.Context, out io.Writer, file, sheet string, req app.ReportRequest) error {
	frame, err := loadFrame(file, sheet)
	if err != nil {
		return err
	}

	report, err := app.NewReportService(summary.NewSummarizer(), 0).Build(ctx, frame, req)
	if err != nil {
		return err
	}

	if err := render.Text(out, report.Summary); err != nil {
		return err
	}
	for _, u := range report.Distributions {
		fmt.Fprintf(out, "\n%s (%d bins, %d density points)\n%s\n", u.Title, u.Bins, len(u.Density), u.FormattingNotes)
	}
	if report.QQ != nil {
		fmt.Fprintf(out, "\nQQ %s vs %s: y = %.4f + %.4f x\n", report.QQ.XLabel, report.QQ.YLabel, report.QQ.Intercept, report.QQ.Slope)
	}
	return nil
}

func loadFrame(file, sheet string) (*dataset.Frame, error) {
	frame, err := excel.NewDataReader(file, sheet).ReadFrame()
	if err != nil {
		return nil, errors.IOError(fmt.Sprintf("failed to load %s", file), err)
	}
	return frame, nil
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func defaultPrecision() int {
	cfg, err := config.Load()
	if err != nil {
		return summary.DefaultPrecision
	}
	return cfg.Summary.Precision
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
