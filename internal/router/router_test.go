package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramsathi/gramsathi-api/internal/config"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	e, err := New(Deps{
		Cfg: config.Config{
			JWTSecret:      "router-test",
			AccessTTLMin:   5,
			BcryptCost:     4,
			WeatherTimeout: time.Second,
			CORSOrigins:    []string{"http://localhost:3000"},
		},
		Cache:     config.CacheConfig{Enabled: true},
		RateLimit: config.RateLimitConfig{Enabled: true},
	})
	require.NoError(t, err)
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutesMounted(t *testing.T) {
	e := newTestServer(t)

	for _, path := range []string{
		"/",
		"/health",
		"/healthz",
		"/api/auth/profile",
		"/api/weather/current/Delhi",
		"/api/weather/forecast/Delhi?days=2",
		"/api/weather/cities",
		"/api/schemes",
		"/api/schemes/",
		"/api/schemes/pm-kisan",
		"/api/health/tips",
		"/api/health/emergency-contacts",
		"/api/marketplace/products",
		"/api/marketplace/products/prod-001",
		"/api/marketplace/categories",
		"/api/soil/soil-types",
		"/api/soil/crop-calendar/Pune",
	} {
		rec := serve(e, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestMeRequiresToken(t *testing.T) {
	rec := serve(newTestServer(t), httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORSAllowsDevOrigin(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/schemes", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := serve(e, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))

	req = httptest.NewRequest(http.MethodGet, "/api/schemes", nil)
	req.Header.Set(echo.HeaderOrigin, "http://evil.example")
	rec = serve(e, req)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestMetricsExposed(t *testing.T) {
	e := newTestServer(t)
	serve(e, httptest.NewRequest(http.MethodGet, "/api/weather/cities", nil))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `gramsathi_http_requests_total{method="GET",route="/api/weather/cities",status="200"} 1`)
}
