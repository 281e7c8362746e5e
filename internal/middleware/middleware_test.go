package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramsathi/gramsathi-api/internal/config"
	"github.com/gramsathi/gramsathi-api/internal/utils"
)

const testSecret = "test-secret"

func newProtected() *echo.Echo {
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"user_id": CurrentUserID(c), "role": CurrentRole(c)})
	}, JWTAuth(testSecret), RequireRole("USER"))
	return e
}

func doGet(e *echo.Echo, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "demo", "USER", 5)
	require.NoError(t, err)

	rec := doGet(newProtected(), "/me", tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":"demo","role":"USER"}`, rec.Body.String())
}

func TestJWTAuthRejects(t *testing.T) {
	e := newProtected()

	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/me", "garbage").Code)

	other, _ := utils.NewAccessToken("other-secret", "demo", "USER", 5)
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/me", other.Token).Code)

	expired, _ := utils.NewAccessToken(testSecret, "demo", "USER", -5)
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/me", expired.Token).Code)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	tok, _ := utils.NewAccessToken(testSecret, "demo", "ADMIN", 5)
	rec := doGet(newProtected(), "/me", tok.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"forbidden"}`, rec.Body.String())
}

func TestCacheKeyUsesConcretePath(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "p", KeyStrategy: "path_query"}
	delhi := httptest.NewRequest(http.MethodGet, "/api/weather/current/Delhi", nil)
	pune := httptest.NewRequest(http.MethodGet, "/api/weather/current/Pune", nil)
	delhiAgain := httptest.NewRequest(http.MethodGet, "/api/weather/current/Delhi", nil)

	assert.NotEqual(t, cacheKey(cfg, delhi), cacheKey(cfg, pune))
	assert.Equal(t, cacheKey(cfg, delhi), cacheKey(cfg, delhiAgain))
	assert.Regexp(t, `^p:[0-9a-f]{40}$`, cacheKey(cfg, delhi))

	q1 := httptest.NewRequest(http.MethodGet, "/f?days=1", nil)
	q3 := httptest.NewRequest(http.MethodGet, "/f?days=3", nil)
	assert.NotEqual(t, cacheKey(cfg, q1), cacheKey(cfg, q3))
	cfg.KeyStrategy = "path"
	assert.Equal(t, cacheKey(cfg, q1), cacheKey(cfg, q3))
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte(`{"a":1}`))
	require.NoError(t, err)

	status, got, body, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, hdr, got)
	assert.Equal(t, `{"a":1}`, string(body))

	_, _, _, ok = decodePayload([]byte{0, 0, 0})
	assert.False(t, ok)
	_, _, _, ok = decodePayload([]byte{0, 0, 0, 200, 0, 0, 1, 0})
	assert.False(t, ok)
}

func TestMiddlewaresPassThroughWithoutRedis(t *testing.T) {
	e := echo.New()
	e.Use(
		NewRedisCache(config.CacheConfig{Enabled: true}, nil, nil),
		NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil, nil),
	)
	e.GET("/x", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := doGet(e, "/x", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Cache"))
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateKeyStrategies(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/schemes/pm-kisan", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/schemes/:id")

	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip"}
	assert.Equal(t, "rl:ip:10.0.0.1", rateKey(cfg, c))

	cfg.KeyStrategy = ""
	assert.Equal(t, "rl:ip:10.0.0.1:user:anon:route:GET /api/schemes/:id", rateKey(cfg, c))
}

func TestBodyRecorderTruncates(t *testing.T) {
	rec := &bodyRecorder{ResponseWriter: httptest.NewRecorder(), limit: 4}
	_, _ = rec.Write([]byte("abc"))
	_, _ = rec.Write([]byte("def"))
	assert.True(t, rec.truncated)
	assert.Equal(t, "abc", rec.buf.String())
}

func TestMetricsCountsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/schemes/:id", func(c echo.Context) error { return c.NoContent(http.StatusNotFound) })

	doGet(e, "/api/schemes/a", "")
	doGet(e, "/api/schemes/b", "")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "/api/schemes/:id", "404")))
}
