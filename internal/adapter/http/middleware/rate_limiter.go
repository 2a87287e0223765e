package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"todoapi/internal/adapter/telemetry"
	"todoapi/internal/core/model/response"
)

type RateLimitRule struct {
	Requests int
	Window   time.Duration
}

type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

// RateLimiter applies a fixed window per client IP and route. Auth endpoints
// get tight limits, everything else a loose default.
type RateLimiter struct {
	cache   *cache.Cache
	rules   map[string]RateLimitRule
	metrics *telemetry.AppMetrics
	mu      sync.Mutex
}

func NewRateLimiter(metrics *telemetry.AppMetrics) *RateLimiter {
	rules := map[string]RateLimitRule{
		"POST /api/auth/register": {Requests: 5, Window: time.Minute},
		"POST /api/auth/login":    {Requests: 10, Window: time.Minute},
		"POST /api/todos":         {Requests: 30, Window: time.Minute},
		"PUT /api/todos/:id":      {Requests: 30, Window: time.Minute},
		"DELETE /api/todos/:id":   {Requests: 30, Window: time.Minute},
		"default":                 {Requests: 120, Window: time.Minute},
	}

	return &RateLimiter{
		cache:   cache.New(5*time.Minute, 10*time.Minute),
		rules:   rules,
		metrics: metrics,
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		methodPath := c.Request.Method + " " + path

		rule, ok := rl.rules[methodPath]
		if !ok {
			rule = rl.rules["default"]
		}

		key := methodPath + "|" + c.ClientIP()

		allowed, remaining, resetTime := rl.allow(key, rule)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rule.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			rl.metrics.RecordRateLimitHit(methodPath)

			c.Header("Retry-After", strconv.Itoa(int(time.Until(resetTime).Seconds())+1))
			c.JSON(http.StatusTooManyRequests, response.Error{Message: "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(key string, rule RateLimitRule) (bool, int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	if cached, found := rl.cache.Get(key); found {
		entry := cached.(*rateLimitEntry)

		if now.Before(entry.ResetTime) {
			if entry.Count >= rule.Requests {
				return false, 0, entry.ResetTime
			}

			entry.Count++
			return true, rule.Requests - entry.Count, entry.ResetTime
		}
	}

	entry := &rateLimitEntry{Count: 1, ResetTime: now.Add(rule.Window)}
	rl.cache.Set(key, entry, rule.Window)

	return true, rule.Requests - 1, entry.ResetTime
}
