package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"consultation-booking/internal/handler/httperr"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	limiterCacheSize = 4096
	limiterIdleTTL   = 10 * time.Minute
)

var ErrRateLimited = errs.New("rate limit exceeded")

// RateLimiter keeps one token bucket per client IP. Idle buckets are
// evicted so the map stays bounded.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	perMinute := max(cfg.PerMinute, 1)
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterIdleTTL),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    max(cfg.Burst, 1),
	}
}

func (r *RateLimiter) limiterFor(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	limiter, ok := r.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(r.limit, r.burst)
	}
	// re-adding refreshes the idle TTL
	r.limiters.Add(ip, limiter)
	return limiter
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !r.limiterFor(ip).Allow() {
			slog.Warn("Rate limit exceeded", "client_ip", ip, "path", c.FullPath())
			httperr.AbortWithError(c, http.StatusTooManyRequests, ErrRateLimited, "Too many requests, try again later", nil)
			return
		}
		c.Next()
	}
}
