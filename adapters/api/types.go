package api

import (
	"math"

	"github.com/AdmcCarthy/Stroop-Effect/app"
	"github.com/AdmcCarthy/Stroop-Effect/domain/core"
	"github.com/AdmcCarthy/Stroop-Effect/domain/dataset"
	domainStats "github.com/AdmcCarthy/Stroop-Effect/domain/stats"
	"github.com/AdmcCarthy/Stroop-Effect/internal/distribution"
)

// SummaryRequest asks for a summary of inline columns, or of the server's
// loaded dataset when Columns is empty
type SummaryRequest struct {
	Columns   []dataset.Column `json:"columns"`
	Names     []string         `json:"names"`
	Precision *int             `json:"precision"`
	Format    string           `json:"format"` // json (default), text, markdown, html
}

// QQRequest compares two samples, or one sample against the standard normal
type QQRequest struct {
	A      dataset.Column  `json:"a"`
	B      *dataset.Column `json:"b"`
	Normal bool            `json:"normal"`
}

// ReportRequest asks for a complete distribution report
type ReportRequest struct {
	SummaryRequest
	Scheme          string   `json:"scheme"`
	Funky           bool     `json:"funky"`
	Bins            string   `json:"bins"`
	Rug             *bool    `json:"rug"`
	FormattingRight *bool    `json:"formatting_right"`
	Lower           *float64 `json:"lower"`
	Upper           *float64 `json:"upper"`
	QQ              bool     `json:"qq"`
}

// StatRowResponse carries a row with undefined statistics as null
type StatRowResponse struct {
	Kind   domainStats.StatKind `json:"kind"`
	Block  domainStats.Block    `json:"block"`
	Label  string               `json:"label"`
	Values []*float64           `json:"values"`
}

// SummaryResponse is the JSON form of a summary table
type SummaryResponse struct {
	Columns   []string          `json:"columns"`
	Precision int               `json:"precision"`
	Rows      []StatRowResponse `json:"rows"`
}

// ReportResponse is the JSON form of a report
type ReportResponse struct {
	ID            core.ReportID              `json:"id"`
	Summary       SummaryResponse            `json:"summary"`
	Distributions []*distribution.Univariate `json:"distributions"`
	QQ            *distribution.QQPlot       `json:"qq,omitempty"`
	RuntimeMs     int64                      `json:"runtime_ms"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func newSummaryResponse(t *domainStats.SummaryTable) SummaryResponse {
	resp := SummaryResponse{
		Columns:   t.Columns,
		Precision: t.Precision,
		Rows:      make([]StatRowResponse, len(t.Rows)),
	}
	for i, r := range t.Rows {
		values := make([]*float64, len(r.Values))
		for j, v := range r.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			v := v
			values[j] = &v
		}
		resp.Rows[i] = StatRowResponse{Kind: r.Kind, Block: r.Block, Label: r.Label, Values: values}
	}
	return resp
}

func newReportResponse(r *app.Report) ReportResponse {
	return ReportResponse{
		ID:            r.ID,
		Summary:       newSummaryResponse(r.Summary),
		Distributions: r.Distributions,
		QQ:            r.QQ,
		RuntimeMs:     r.RuntimeMs,
	}
}
