package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/Fjodor83/MyFidelityCard/pkg/errors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRoutes struct{}

func (stubRoutes) RegisterRoutes(g *echo.Group, emailValidation ...echo.MiddlewareFunc) {
	g.GET("/email-validation", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"userExists": false})
	}, emailValidation...)
	g.GET("/profile", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}

func newTestServer(rateLimit RateLimitConfig) *Server {
	s := NewServer(Config{
		Port:        "0",
		Timeout:     5,
		CORSOrigins: []string{"https://localhost:7065"},
		RateLimit:   rateLimit,
	}, zap.NewNop())
	s.RegisterRoutes(stubRoutes{})
	return s
}

func serve(s *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.7")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(RateLimitConfig{})

	rec := serve(s, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_RateLimitsEmailValidation(t *testing.T) {
	s := newTestServer(RateLimitConfig{Rate: 0.001, Burst: 2, ExpiresIn: time.Minute})

	for i := 0; i < 2; i++ {
		rec := serve(s, http.MethodGet, "/fidelity/email-validation?email=mario@example.com")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
	}

	rec := serve(s, http.MethodGet, "/fidelity/email-validation?email=mario@example.com")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body apperrors.HTTPBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, messageTooManyRequests, body.Message)

	// 다른 경로는 제한하지 않음
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/fidelity/profile").Code)
	}
}

func TestServer_RateLimitDisabled(t *testing.T) {
	s := newTestServer(RateLimitConfig{})

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/fidelity/email-validation").Code)
	}
}

func TestServer_NotFound(t *testing.T) {
	s := newTestServer(RateLimitConfig{})

	rec := serve(s, http.MethodGet, "/unknown")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
