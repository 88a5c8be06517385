package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-showcase/showcase-api/internal/importer"
	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/service"
	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
)

type fakeStudentService struct {
	imported  string
	updatePIN string
	importErr error
}

func (f *fakeStudentService) List(context.Context) ([]models.Student, error) { return nil, nil }

func (f *fakeStudentService) Get(_ context.Context, pin string) (*models.Student, error) {
	if pin != "21A51A0501" {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return &models.Student{ID: pin, PIN: pin, Name: "Asha"}, nil
}

func (f *fakeStudentService) Create(_ context.Context, s models.Student) (*models.Student, error) {
	if s.PIN == "21A51A0501" {
		return nil, appErrors.Clone(appErrors.ErrConflict, "student with PIN 21A51A0501 already exists")
	}
	s.ID = s.PIN
	return &s, nil
}

func (f *fakeStudentService) Update(_ context.Context, pin string, s models.Student) (*models.Student, error) {
	f.updatePIN = pin
	s.ID = s.PIN
	return &s, nil
}

func (f *fakeStudentService) Delete(context.Context, string) error { return nil }

func (f *fakeStudentService) BulkImport(_ context.Context, text string) (*service.ImportResult, error) {
	f.imported = text
	if f.importErr != nil {
		return nil, f.importErr
	}
	return &service.ImportResult{TotalRows: 2, Accepted: 2, Inserted: 2}, nil
}

const roster = "PIN,Name,Branch,Year,Section\n21A51A0502,Ravi,ECE,3,B\n21A51A0503,Kiran,IT,2,C\n"

func TestStudentHandlerCRUD(t *testing.T) {
	svc := &fakeStudentService{}
	router := testRouter(Handlers{Students: NewStudentHandler(svc, 1024)})

	rec := performRequest(router, jsonRequest(http.MethodGet, "/api/v1/students/21A51A0501", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := map[string]string{"pin": "21A51A0501", "name": "Asha", "branch": "CSE", "year": "3", "section": "A"}
	rec = performRequest(router, asAdmin(jsonRequest(http.MethodPost, "/api/v1/students", body)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	body["pin"] = "21A51A0509"
	rec = performRequest(router, asAdmin(jsonRequest(http.MethodPut, "/api/v1/students/21A51A0501", body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "21A51A0501", svc.updatePIN)
}

func TestStudentHandlerImportPlainBody(t *testing.T) {
	svc := &fakeStudentService{}
	router := testRouter(Handlers{Students: NewStudentHandler(svc, 1024)})

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/v1/students/import", strings.NewReader(roster)))
	req.Header.Set("Content-Type", "text/csv")
	rec := performRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, roster, svc.imported)
	assert.JSONEq(t, `{"totalRows":2,"accepted":2,"inserted":2}`, string(decodeEnvelope(t, rec).Data))
}

func TestStudentHandlerImportMultipart(t *testing.T) {
	svc := &fakeStudentService{}
	router := testRouter(Handlers{Students: NewStudentHandler(svc, 1024)})

	rec := performRequest(router, asAdmin(multipartRequest(t, "/api/v1/students/import", "file", "roster.csv", []byte(roster))))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, roster, svc.imported)

	rec = performRequest(router, asAdmin(multipartRequest(t, "/api/v1/students/import", "other", "roster.csv", []byte(roster))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentHandlerImportLimits(t *testing.T) {
	svc := &fakeStudentService{}
	router := testRouter(Handlers{Students: NewStudentHandler(svc, 32)})

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/v1/students/import", strings.NewReader(roster)))
	rec := performRequest(router, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	req = asAdmin(httptest.NewRequest(http.MethodPost, "/api/v1/students/import", strings.NewReader("  \n")))
	rec = performRequest(router, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.imported)
}

func TestStudentHandlerImportReportsRejectedRows(t *testing.T) {
	rejected := []importer.RowError{{Line: 2, Reason: "expected at least 5 non-empty columns"}}
	svc := &fakeStudentService{importErr: appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, "no valid student rows found"), rejected)}
	router := testRouter(Handlers{Students: NewStudentHandler(svc, 1024)})

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/v1/students/import", strings.NewReader("PIN\nonly\n")))
	rec := performRequest(router, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", env.Error["code"])
	details, ok := env.Error["details"].([]interface{})
	require.True(t, ok)
	assert.Len(t, details, 1)
}
