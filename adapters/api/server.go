package api

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/AdmcCarthy/Stroop-Effect/adapters/excel"
	"github.com/AdmcCarthy/Stroop-Effect/adapters/render"
	"github.com/AdmcCarthy/Stroop-Effect/app"
	"github.com/AdmcCarthy/Stroop-Effect/domain/dataset"
	domainStats "github.com/AdmcCarthy/Stroop-Effect/domain/stats"
	"github.com/AdmcCarthy/Stroop-Effect/internal/config"
	"github.com/AdmcCarthy/Stroop-Effect/internal/distribution"
	"github.com/AdmcCarthy/Stroop-Effect/internal/errors"
	"github.com/AdmcCarthy/Stroop-Effect/internal/summary"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Server exposes the summarizer and distribution helpers over HTTP
type Server struct {
	router     *gin.Engine
	cfg        *config.Config
	summarizer *summary.Summarizer
	reports    *app.ReportService
	writer     *excel.SummaryWriter
	frame      *dataset.Frame // optional dataset loaded at startup
}

// NewServer creates a new API server; frame may be nil
func NewServer(cfg *config.Config, frame *dataset.Frame) *Server {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}
	summarizer := summary.NewSummarizer()
	s := &Server{
		router:     gin.New(),
		cfg:        cfg,
		summarizer: summarizer,
		reports:    app.NewReportService(summarizer, 4),
		writer:     excel.NewSummaryWriter(),
		frame:      frame,
	}
	s.router.Use(gin.Logger(), gin.Recovery())
	s.setupRoutes()
	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured port
func (s *Server) Start() error {
	addr := ":" + s.cfg.Server.Port
	log.Printf("[API] Listening on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	api.GET("/columns", s.handleColumns)
	api.POST("/summary", s.handleSummary)
	api.POST("/summary.xlsx", s.handleSummaryWorkbook)
	api.POST("/qq", s.handleQQ)
	api.POST("/report", s.handleReport)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"datasetLoaded": s.frame != nil,
	})
}

func (s *Server) handleColumns(c *gin.Context) {
	if s.frame == nil {
		s.fail(c, errors.New(errors.CodeNotFound, "no dataset loaded"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"columns": s.frame.Names(),
		"count":   s.frame.Len(),
	})
}

func (s *Server) handleSummary(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, errors.Wrap(errors.ValidationError(err.Error()), "invalid request body"))
		return
	}

	table, err := s.summarize(req)
	if err != nil {
		s.fail(c, errors.Wrap(err, "summary failed"))
		return
	}

	if req.Format == "" || req.Format == "json" {
		c.JSON(http.StatusOK, newSummaryResponse(table))
		return
	}
	format, err := render.ParseFormat(req.Format)
	if err != nil {
		s.fail(c, errors.InvalidInput(err.Error()))
		return
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, table, format); err != nil {
		s.fail(c, errors.Wrap(err, "render failed"))
		return
	}
	contentType := "text/plain; charset=utf-8"
	switch format {
	case render.FormatMarkdown:
		contentType = "text/markdown; charset=utf-8"
	case render.FormatHTML:
		contentType = "text/html; charset=utf-8"
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (s *Server) handleSummaryWorkbook(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, errors.Wrap(errors.ValidationError(err.Error()), "invalid request body"))
		return
	}

	table, err := s.summarize(req)
	if err != nil {
		s.fail(c, errors.Wrap(err, "summary failed"))
		return
	}

	var buf bytes.Buffer
	if err := s.writer.Write(table, &buf); err != nil {
		s.fail(c, errors.Wrap(err, "workbook export failed"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="summary.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (s *Server) handleQQ(c *gin.Context) {
	var req QQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, errors.Wrap(errors.ValidationError(err.Error()), "invalid request body"))
		return
	}

	var (
		plot *distribution.QQPlot
		err  error
	)
	switch {
	case req.Normal:
		plot, err = distribution.NormalQQ(req.A.Values, req.A.Name)
	case req.B != nil:
		plot, err = distribution.TwoSampleQQ(req.A.Values, req.B.Values, req.A.Name, req.B.Name)
	default:
		err = errors.InvalidInput("either b or normal must be set")
	}
	if err != nil {
		s.fail(c, errors.Wrap(err, "qq comparison failed"))
		return
	}
	c.JSON(http.StatusOK, plot)
}

func (s *Server) handleReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, errors.Wrap(errors.ValidationError(err.Error()), "invalid request body"))
		return
	}

	frame, err := s.frameFor(req.SummaryRequest)
	if err != nil {
		s.fail(c, err)
		return
	}

	opts := distribution.DefaultOptions()
	opts.Scheme = s.cfg.Plot.Scheme
	opts.Bins = s.cfg.Plot.Bins
	if req.Scheme != "" {
		opts.Scheme = req.Scheme
	}
	if req.Bins != "" {
		opts.Bins = req.Bins
	}
	if req.Rug != nil {
		opts.Rug = *req.Rug
	}
	if req.FormattingRight != nil {
		opts.FormattingRight = *req.FormattingRight
	}
	opts.Funky = req.Funky
	opts.Lower, opts.Upper = req.Lower, req.Upper

	report, err := s.reports.Build(c.Request.Context(), frame, app.ReportRequest{
		Columns:   req.Names,
		Precision: s.precision(req.Precision),
		Plot:      opts,
		QQ:        req.QQ,
	})
	if err != nil {
		s.fail(c, errors.Wrap(err, "report failed"))
		return
	}
	c.JSON(http.StatusOK, newReportResponse(report))
}

func (s *Server) summarize(req SummaryRequest) (*domainStats.SummaryTable, error) {
	frame, err := s.frameFor(req)
	if err != nil {
		return nil, err
	}
	return s.summarizer.Summarize(frame, req.Names, s.precision(req.Precision))
}

// frameFor prefers inline columns over the loaded dataset
func (s *Server) frameFor(req SummaryRequest) (*dataset.Frame, error) {
	if len(req.Columns) > 0 {
		return dataset.NewFrame(req.Columns...), nil
	}
	if s.frame == nil {
		return nil, errors.InvalidInput("no columns given and no dataset loaded")
	}
	return s.frame, nil
}

func (s *Server) precision(p *int) int {
	if p == nil {
		return s.cfg.Summary.Precision
	}
	return *p
}

func (s *Server) fail(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[API] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: fmt.Sprint(err),
		Code:  errors.GetCode(err),
	})
}
