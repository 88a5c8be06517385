package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/service"
	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
)

type fakePerformance struct{}

func (fakePerformance) GetStudentPerformance(_ context.Context, pin string) (*models.PerformanceSummary, bool, error) {
	switch pin {
	case "21A51A0501":
		return &models.PerformanceSummary{
			Student:        models.Student{ID: pin, PIN: pin, Name: "Asha"},
			Participations: []models.Participation{},
			TotalMarks:     0,
		}, true, nil
	case "DOWN":
		return nil, false, appErrors.Clone(appErrors.ErrPersistence, "failed to list students")
	}
	return nil, false, nil
}

type fakeReports struct{ format service.ReportFormat }

func (f *fakeReports) PerformanceReport(_ context.Context, pin string, format service.ReportFormat) (*service.ExportResult, error) {
	f.format = format
	if format == "xlsx" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	return &service.ExportResult{Filename: "performance_" + pin + ".csv", ContentType: "text/csv", Data: []byte("Activity\n")}, nil
}

func TestPerformanceHandlerGet(t *testing.T) {
	router := testRouter(Handlers{Performance: NewPerformanceHandler(fakePerformance{}, &fakeReports{})})

	rec := performRequest(router, jsonRequest(http.MethodGet, "/api/v1/performance/21A51A0501", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.JSONEq(t, `{"student":{"id":"21A51A0501","pin":"21A51A0501","name":"Asha","branch":"","year":"","section":""},"participations":[],"totalMarks":0}`, string(env.Data))
	assert.Contains(t, env.Meta, "processing_time_ms")

	rec = performRequest(router, jsonRequest(http.MethodGet, "/api/v1/performance/NOPIN", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = performRequest(router, jsonRequest(http.MethodGet, "/api/v1/performance/DOWN", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "PERSISTENCE_ERROR", decodeEnvelope(t, rec).Error["code"])
}

func TestPerformanceHandlerExport(t *testing.T) {
	reports := &fakeReports{}
	router := testRouter(Handlers{Performance: NewPerformanceHandler(fakePerformance{}, reports)})

	rec := performRequest(router, jsonRequest(http.MethodGet, "/api/v1/performance/21A51A0501/export?format=csv", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.ReportFormatCSV, reports.format)
	assert.Equal(t, `attachment; filename="performance_21A51A0501.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "Activity\n", rec.Body.String())

	rec = performRequest(router, jsonRequest(http.MethodGet, "/api/v1/performance/21A51A0501/export?format=xlsx", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
