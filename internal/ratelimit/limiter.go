package ratelimit

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ClientLimiter keeps one token bucket per client IP so a single misbehaving
// frontend session cannot exhaust the upstream shopping API quota.
type ClientLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

func NewClientLimiter(config Config) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func (c *ClientLimiter) getLimiter(clientIP string) *rate.Limiter {
	c.mu.RLock()
	limiter, exists := c.limiters[clientIP]
	c.mu.RUnlock()

	if exists {
		return limiter
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if limiter, exists = c.limiters[clientIP]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(c.defaults.RequestsPerSecond), c.defaults.BurstSize)
	c.limiters[clientIP] = limiter
	return limiter
}

// Allow reports whether a request from clientIP may proceed right now.
func (c *ClientLimiter) Allow(clientIP string) bool {
	return c.getLimiter(clientIP).Allow()
}

// Middleware rejects over-limit requests with 429 before they reach the
// handlers.
func (c *ClientLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !c.Allow(ctx.ClientIP()) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		ctx.Next()
	}
}
