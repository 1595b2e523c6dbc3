package ratelimit

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/pkg/response"
)

// Middleware creates a rate limiting middleware for Gin keyed by client IP
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return CustomKeyMiddleware(limiter, func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// CustomKeyMiddleware creates a rate limiting middleware with custom key function
func CustomKeyMiddleware(limiter *RateLimiter, keyFunc func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFunc(c)
		if key == "" {
			key = c.ClientIP() // Fallback to IP
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Burst()))

		if !limiter.Allow(key) {
			retry := int(math.Ceil(limiter.RetryAfter().Seconds()))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retry))
			response.Error(c, 429, "Rate limit exceeded. Try again later.", "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))
		c.Next()
	}
}
