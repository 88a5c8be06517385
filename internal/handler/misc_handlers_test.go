package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/service"
	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
)

type fakeUploads struct {
	category, name string
	data           []byte
}

func (f *fakeUploads) Upload(_ context.Context, category, originalName string, _ int64, r io.Reader) (string, error) {
	if category == "documents" {
		return "", appErrors.Clone(appErrors.ErrValidation, "unknown upload category")
	}
	f.category, f.name = category, originalName
	f.data, _ = io.ReadAll(r)
	return "/media/" + category + "/1_abc.png", nil
}

func TestUploadHandler(t *testing.T) {
	uploads := &fakeUploads{}
	router := testRouter(Handlers{Uploads: NewUploadHandler(uploads, 1024)})

	rec := performRequest(router, asAdmin(multipartRequest(t, "/api/v1/uploads/gallery", "file", "a.png", []byte("\x89PNG\r\n\x1a\n"))))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"url":"/media/gallery/1_abc.png"}`, string(decodeEnvelope(t, rec).Data))
	assert.Equal(t, "a.png", uploads.name)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), uploads.data)

	rec = performRequest(router, asAdmin(multipartRequest(t, "/api/v1/uploads/documents", "file", "a.png", []byte("x"))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performRequest(router, multipartRequest(t, "/api/v1/uploads/gallery", "file", "a.png", []byte("x")))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = performRequest(router, asAdmin(jsonRequest(http.MethodPost, "/api/v1/uploads/gallery", map[string]string{})))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandlerRejectsOversizedBodies(t *testing.T) {
	router := testRouter(Handlers{Uploads: NewUploadHandler(&fakeUploads{}, 16)})

	big := make([]byte, 1024)
	rec := performRequest(router, asAdmin(multipartRequest(t, "/api/v1/uploads/gallery", "file", "a.png", big)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

type staticVersions map[string]uint64

func (s staticVersions) Versions() map[string]uint64 { return s }

func TestChangeHandler(t *testing.T) {
	router := testRouter(Handlers{Changes: NewChangeHandler(staticVersions{"winners": 3, "students": 0})})

	rec := performRequest(router, jsonRequest(http.MethodGet, "/api/v1/changes", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"winners":3,"students":0}`, string(decodeEnvelope(t, rec).Data))
}

type fakeAuth struct{}

func (fakeAuth) Login(_ context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if req.Password != "s3cret!" {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
	}
	return &models.LoginResponse{AccessToken: "token", ExpiresIn: 3600}, nil
}

func TestAuthHandlerLogin(t *testing.T) {
	router := testRouter(Handlers{Auth: NewAuthHandler(fakeAuth{})})

	rec := performRequest(router, jsonRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "admin@example.com", "password": "s3cret!"}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"access_token":"token"`)

	rec = performRequest(router, jsonRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "admin@example.com", "password": "nope"}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = performRequest(router, jsonRequest(http.MethodPost, "/api/v1/auth/login", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsHandlerReadiness(t *testing.T) {
	metrics := service.NewMetricsService()
	healthy := NewMetricsHandler(metrics, map[string]ReadinessCheck{
		"store": func(context.Context) error { return nil },
	}, nil)
	failing := NewMetricsHandler(metrics, map[string]ReadinessCheck{
		"store": func(context.Context) error { return nil },
		"redis": func(context.Context) error { return errors.New("connection refused") },
	}, nil)

	router := testRouter(Handlers{})
	router.GET("/ready", healthy.Ready)
	router.GET("/ready-failing", failing.Ready)
	router.GET("/health", healthy.Health)
	router.GET("/metrics", healthy.Prometheus)

	rec := performRequest(router, jsonRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready","checks":{"store":"ok"}}`, rec.Body.String())

	rec = performRequest(router, jsonRequest(http.MethodGet, "/ready-failing", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable","checks":{"store":"ok","redis":"connection refused"}}`, rec.Body.String())

	rec = performRequest(router, jsonRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(router, jsonRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "goroutines_total")
}
