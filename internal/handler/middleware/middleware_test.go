//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"consultation-booking/internal/handler/middleware"
	"consultation-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(router *gin.Engine, method, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		router := gin.New()
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{PerMinute: 1, Burst: 2})
		router.POST("/api/drafts", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })
		return router
	}

	t.Run("burst is allowed then 429", func(t *testing.T) {
		router := newRouter()

		assert.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/api/drafts", "192.0.2.1:5000").Code)
		assert.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/api/drafts", "192.0.2.1:5001").Code)

		rec := serve(router, http.MethodPost, "/api/drafts", "192.0.2.1:5002")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Too many requests")
	})

	t.Run("buckets are per client ip", func(t *testing.T) {
		router := newRouter()

		for range 2 {
			require.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/api/drafts", "192.0.2.1:5000").Code)
		}
		assert.Equal(t, http.StatusTooManyRequests, serve(router, http.MethodPost, "/api/drafts", "192.0.2.1:5000").Code)
		assert.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/api/drafts", "198.51.100.7:5000").Code)
	})

	t.Run("zero config still allows one request", func(t *testing.T) {
		router := gin.New()
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{})
		router.GET("/x", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/x", "192.0.2.1:1").Code)
		assert.Equal(t, http.StatusTooManyRequests, serve(router, http.MethodGet, "/x", "192.0.2.1:1").Code)
	})
}

type observation struct {
	method, route, status string
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (r *recordingObserver) ObserveHTTP(method, route, status string, seconds float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, observation{method: method, route: route, status: status})
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &recordingObserver{}

	router := gin.New()
	router.Use(middleware.Metrics(obs))
	router.GET("/api/admin/bookings/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	serve(router, http.MethodGet, "/api/admin/bookings/6b1f3a52-0c4e-4b7b-9a57-2b6a0d8c1e11", "192.0.2.1:1")
	serve(router, http.MethodGet, "/nowhere", "192.0.2.1:1")

	require.Len(t, obs.seen, 2)
	assert.Equal(t, observation{method: http.MethodGet, route: "/api/admin/bookings/:id", status: "204"}, obs.seen[0])
	assert.Equal(t, observation{method: http.MethodGet, route: "unmatched", status: "404"}, obs.seen[1])
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rec := serve(router, http.MethodGet, "/boom", "192.0.2.1:1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "kaboom")
}
