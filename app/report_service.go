package app

import (
	"context"
	"log"
	"time"

	"github.com/AdmcCarthy/Stroop-Effect/domain/core"
	"github.com/AdmcCarthy/Stroop-Effect/domain/dataset"
	domainStats "github.com/AdmcCarthy/Stroop-Effect/domain/stats"
	"github.com/AdmcCarthy/Stroop-Effect/internal/distribution"
	"github.com/AdmcCarthy/Stroop-Effect/internal/summary"

	"golang.org/x/sync/errgroup"
)

// ReportService assembles descriptive statistics and distribution plot
// data for a set of columns
type ReportService struct {
	summarizer  *summary.Summarizer
	concurrency int
}

// ReportRequest defines the inputs of a report
type ReportRequest struct {
	Columns   []string             // empty means every column of the frame
	Precision int                  // decimal places of the summary table
	Plot      distribution.Options // univariate plot options, applied to every column
	QQ        bool                 // add a two-sample QQ comparison of the first two columns
}

// Report is the complete output for one request
type Report struct {
	ID            core.ReportID              `json:"id"`
	Summary       *domainStats.SummaryTable  `json:"summary"`
	Distributions []*distribution.Univariate `json:"distributions"`
	QQ            *distribution.QQPlot       `json:"qq,omitempty"`
	RuntimeMs     int64                      `json:"runtime_ms"`
}

// NewReportService creates a report service; concurrency bounds the number
// of columns processed at once (<= 0 means unbounded)
func NewReportService(summarizer *summary.Summarizer, concurrency int) *ReportService {
	return &ReportService{
		summarizer:  summarizer,
		concurrency: concurrency,
	}
}

// Build computes the summary table synchronously, then the per-column
// distribution data in parallel. Output order follows the request.
func (s *ReportService) Build(ctx context.Context, frame *dataset.Frame, req ReportRequest) (*Report, error) {
	startTime := time.Now()

	table, err := s.summarizer.Summarize(frame, req.Columns, req.Precision)
	if err != nil {
		return nil, err
	}
	cols, err := frame.Select(table.Columns...)
	if err != nil {
		return nil, err
	}

	report := &Report{
		ID:            core.NewReportID(),
		Summary:       table,
		Distributions: make([]*distribution.Univariate, len(cols)),
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for i, col := range cols {
		i, col := i, col
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			u, err := distribution.NewUnivariate(col, req.Plot)
			if err != nil {
				return err
			}
			report.Distributions[i] = u
			return nil
		})
	}
	if req.QQ && len(cols) >= 2 {
		g.Go(func() error {
			qq, err := distribution.TwoSampleQQ(cols[0].Values, cols[1].Values, cols[0].Name, cols[1].Name)
			if err != nil {
				return err
			}
			report.QQ = qq
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.RuntimeMs = time.Since(startTime).Milliseconds()
	log.Printf("[ReportService] Report %s built for %d columns in %dms", report.ID, len(cols), report.RuntimeMs)
	return report, nil
}
