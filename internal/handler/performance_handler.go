package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/campus-showcase/showcase-api/internal/middleware"
	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/service"
	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
	"github.com/campus-showcase/showcase-api/pkg/response"
)

type performanceService interface {
	GetStudentPerformance(ctx context.Context, pin string) (*models.PerformanceSummary, bool, error)
}

type reportService interface {
	PerformanceReport(ctx context.Context, pin string, format service.ReportFormat) (*service.ExportResult, error)
}

// PerformanceHandler serves student performance summaries and their exports.
type PerformanceHandler struct {
	performance performanceService
	reports     reportService
}

// NewPerformanceHandler constructs a PerformanceHandler.
func NewPerformanceHandler(performance performanceService, reports reportService) *PerformanceHandler {
	return &PerformanceHandler{performance: performance, reports: reports}
}

// Get godoc
// @Summary Student performance summary
// @Description Every participation of the student with its award marks, most recent first
// @Tags Performance
// @Produce json
// @Param pin path string true "Student PIN"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /performance/{pin} [get]
func (h *PerformanceHandler) Get(c *gin.Context) {
	summary, found, err := h.performance.GetStudentPerformance(c.Request.Context(), c.Param("pin"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !found {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "student not found"))
		return
	}
	response.OK(c, summary, middleware.ResponseMeta(c))
}

// Export godoc
// @Summary Export a performance report
// @Tags Performance
// @Produce text/csv,application/pdf
// @Param pin path string true "Student PIN"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /performance/{pin}/export [get]
func (h *PerformanceHandler) Export(c *gin.Context) {
	result, err := h.reports.PerformanceReport(c.Request.Context(), c.Param("pin"), service.ReportFormat(c.Query("format")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Data)
}
