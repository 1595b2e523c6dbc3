package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/pkg/ratelimit"
)

// RegisterRoutes mounts the public /auth endpoints behind a per-IP limiter.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, limiter *ratelimit.RateLimiter) {
	auth := router.Group("/auth")
	auth.Use(ratelimit.Middleware(limiter))
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
	}
}
