package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/shamsi/internal/application/services"
	"github.com/taskmaster/shamsi/internal/infrastructure/cache"
	"github.com/taskmaster/shamsi/internal/infrastructure/config"
	"github.com/taskmaster/shamsi/internal/infrastructure/logger"
	"github.com/taskmaster/shamsi/internal/infrastructure/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Shamsi", Version: "test", Environment: "development"},
		Server: config.ServerConfig{
			Port:         8080,
			WriteTimeout: 5 * time.Second,
		},
		Calendar: config.CalendarConfig{DefaultZone: "UTC", Digits: "en", DefaultLayout: "Y/m/d"},
		Security: config.SecurityConfig{CORSAllowedOrigins: "*"},
		Metrics:  config.MetricsConfig{Enabled: true},
	}
}

func newTestServer(t *testing.T, cfg *config.Config, renderCache cache.RenderCache) *Server {
	t.Helper()
	m := metrics.New()
	svc, err := services.NewCalendarService(cfg.Calendar, renderCache, m, logger.NewNop())
	require.NoError(t, err)

	srv, err := New(cfg, svc, renderCache, m, logger.NewNop())
	require.NoError(t, err)
	return srv
}

func get(srv *Server, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := get(srv, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = get(srv, "/ready")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", decode(t, rec)["status"])

	rec = get(srv, "/health/detailed")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "ok", body["status"])
	checks := body["checks"].(map[string]interface{})
	assert.Equal(t, "disabled", checks["cache"].(map[string]interface{})["status"])
}

func TestDetailedHealthReportsCacheOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	cfg := testConfig()
	cfg.Cache = config.CacheConfig{Enabled: true, TTL: time.Minute, KeyPrefix: "shamsi"}
	srv := newTestServer(t, cfg, cache.NewRedisCache(client, time.Minute, "shamsi"))

	rec := get(srv, "/health/detailed")
	assert.Equal(t, "ok", decode(t, rec)["status"])

	mr.Close()

	rec = get(srv, "/health/detailed")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "degraded", body["status"])
	checks := body["checks"].(map[string]interface{})
	assert.Equal(t, "error", checks["cache"].(map[string]interface{})["status"])
}

func TestAPIRouteIsMounted(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	rec := get(srv, "/api/v1/format?ts=1710892800")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1403/01/01", decode(t, rec)["result"])

	rec = get(srv, "/api/v1/nothing-here")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateLimitAppliesToAPIOnly(t *testing.T) {
	cfg := testConfig()
	cfg.Security.RateLimitRequests = 2
	cfg.Security.RateLimitWindow = time.Minute
	srv := newTestServer(t, cfg, nil)

	for i := 0; i < 2; i++ {
		rec := get(srv, "/api/v1/convert/to-jalali?year=2024&month=3&day=20")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := get(srv, "/api/v1/convert/to-jalali?year=2024&month=3&day=20")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = get(srv, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	get(srv, "/api/v1/format?ts=1710892800")

	rec := get(srv, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/api/v1/format",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), `shamsi_operations_total{operation="format",result="ok"} 1`)
}

func TestMetricsCanBeDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	srv := newTestServer(t, cfg, nil)

	rec := get(srv, "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
