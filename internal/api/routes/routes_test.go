package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"church-planning-backend/internal/api/routes"
	"church-planning-backend/internal/config"
	"church-planning-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:    "test",
		JWTSecret:      "routes-test-secret",
		JWTTTLHours:    1,
		AppURL:         "http://localhost:7008",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

func serve(router *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := metrics.NewPrometheusRecorder()

	// No handler below touches the database.
	router, err := routes.SetupRoutes(nil, testConfig(), routes.Dependencies{Metrics: recorder})
	require.NoError(t, err)

	t.Run("liveness is public", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/health/live", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("api requires a bearer token", func(t *testing.T) {
		for _, path := range []string{"/api/v1/me", "/api/v1/churches", "/api/v1/events/x/departments/y/planning"} {
			w := serve(router, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/v1/me", http.Header{"Authorization": {"Bearer nope"}})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/v2/nothing", http.Header{"X-Request-ID": {"req-42"}})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "req-42")
	})

	t.Run("google login without credentials", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/auth/google/start", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("metrics exposes http counters", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/metrics", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "church_planning_http_requests_total")
		assert.Contains(t, w.Body.String(), `route="/health/live"`)
	})
}

func TestSetupRoutes_InvalidAuthConfig(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = ""

	_, err := routes.SetupRoutes(nil, cfg, routes.Dependencies{})

	assert.Error(t, err)
}
