package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/campus-showcase/showcase-api/internal/models"
	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
	"github.com/campus-showcase/showcase-api/pkg/export"
)

// ReportFormat selects the rendering of an exported report.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)

var reportHeaders = []string{"Activity", "Date", "Department", "College", "Award", "Marks"}

type performanceReader interface {
	GetStudentPerformance(ctx context.Context, pin string) (*models.PerformanceSummary, bool, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult is a rendered report ready to be sent to the client.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders student performance reports.
type ExportService struct {
	performance performanceReader
	csv         csvRenderer
	pdf         pdfRenderer
	logger      *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(performance performanceReader, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{performance: performance, csv: csv, pdf: pdf, logger: logger}
}

// PerformanceReport renders the performance summary of the student with pin.
func (s *ExportService) PerformanceReport(ctx context.Context, pin string, format ReportFormat) (*ExportResult, error) {
	format = ReportFormat(strings.ToLower(string(format)))
	if format == "" {
		format = ReportFormatCSV
	}
	if format != ReportFormatCSV && format != ReportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	summary, found, err := s.performance.GetStudentPerformance(ctx, pin)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	dataset := performanceDataset(summary)
	base := "performance_" + sanitizeFilename(summary.Student.PIN)

	switch format {
	case ReportFormatPDF:
		data, err := s.pdf.Render(dataset, "Performance report")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
		}
		return &ExportResult{Filename: base + ".pdf", ContentType: "application/pdf", Data: data}, nil
	default:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
		}
		return &ExportResult{Filename: base + ".csv", ContentType: "text/csv", Data: data}, nil
	}
}

func performanceDataset(summary *models.PerformanceSummary) export.Dataset {
	rows := make([]map[string]string, 0, len(summary.Participations))
	for _, p := range summary.Participations {
		rows = append(rows, map[string]string{
			"Activity":   p.ActivityName,
			"Date":       p.ActivityDate.String(),
			"Department": p.Department,
			"College":    p.College,
			"Award":      string(p.Award),
			"Marks":      strconv.Itoa(p.Marks),
		})
	}
	st := summary.Student
	return export.Dataset{
		Subject: []export.Field{
			{Label: "Student", Value: st.Name},
			{Label: "PIN", Value: st.PIN},
			{Label: "Branch", Value: st.Branch},
			{Label: "Year", Value: st.Year},
			{Label: "Section", Value: st.Section},
		},
		Headers: reportHeaders,
		Rows:    rows,
		Totals: []export.Field{
			{Label: "Participations", Value: strconv.Itoa(len(summary.Participations))},
			{Label: "Total marks", Value: strconv.Itoa(summary.TotalMarks)},
		},
	}
}

func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
