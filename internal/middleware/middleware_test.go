package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/campus-showcase/showcase-api/internal/models"
	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
)

type stubValidator struct {
	token string
}

func (s stubValidator) ValidateToken(token string) (*models.JWTClaims, error) {
	if token != s.token {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	return &models.JWTClaims{
		Email:            "admin@example.com",
		Role:             models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1"},
	}, nil
}

func TestJWTMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWT(stubValidator{token: "good"}))
	router.POST("/winners", func(c *gin.Context) {
		claims := Claims(c)
		require.NotNil(t, claims)
		c.String(http.StatusCreated, claims.Email)
	})

	cases := map[string]int{
		"":             http.StatusUnauthorized,
		"Basic abc":    http.StatusUnauthorized,
		"Bearer ":      http.StatusUnauthorized,
		"Bearer wrong": http.StatusUnauthorized,
		"bearer good":  http.StatusCreated,
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodPost, "/winners", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, header)
	}
}

type recordedRequest struct {
	method, path string
	status       int
}

type recordingObserver struct {
	requests []recordedRequest
}

func (r *recordingObserver) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	r.requests = append(r.requests, recordedRequest{method, path, status})
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &recordingObserver{}
	router := gin.New()
	router.Use(Metrics(obs))
	router.GET("/performance/:pin", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/performance/21A51A0501", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/1", nil))

	require.Len(t, obs.requests, 2)
	assert.Equal(t, recordedRequest{http.MethodGet, "/performance/:pin", http.StatusOK}, obs.requests[0])
	assert.Equal(t, "unmatched", obs.requests[1].path)
	assert.Equal(t, http.StatusNotFound, obs.requests[1].status)
}

func TestResponseMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var meta map[string]interface{}
	router := gin.New()
	router.Use(WithResponseMeta())
	router.GET("/", func(c *gin.Context) {
		SetCacheHit(c, true)
		meta = ResponseMeta(c)
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, true, meta["cache_hit"])
	assert.Contains(t, meta, "processing_time_ms")
}

func TestStoreTimeoutBoundsRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var deadline time.Time
	var hasDeadline bool
	router := gin.New()
	router.Use(StoreTimeout(50 * time.Millisecond))
	router.GET("/", func(c *gin.Context) {
		deadline, hasDeadline = c.Request.Context().Deadline()
		<-c.Request.Context().Done()
		assert.ErrorIs(t, c.Request.Context().Err(), context.DeadlineExceeded)
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, hasDeadline)
	assert.False(t, deadline.IsZero())
}

func TestAuditLogsSuccessfulWritesOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(ContextUserKey, &models.JWTClaims{Email: "admin@example.com", Role: models.RoleAdmin})
		c.Next()
	}, Audit(zap.New(core)))
	router.GET("/winners", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/winners", func(c *gin.Context) { c.Status(http.StatusCreated) })
	router.DELETE("/winners/:id", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/winners", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/winners", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/winners/1", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "admin_write", entries[0].Message)
	assert.Equal(t, "admin@example.com", entries[0].ContextMap()["actor"])
	assert.Equal(t, "/winners", entries[0].ContextMap()["route"])
}
