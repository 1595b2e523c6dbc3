package search

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler, guard *middleware.Guard) {
	search := router.Group("/search")
	{
		search.GET("/products", handler.Products)
		search.GET("/users", guard.AdminOnly(), handler.Users)
	}
}
