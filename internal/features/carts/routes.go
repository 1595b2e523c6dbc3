package carts

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/middleware"
)

// RegisterRoutes mounts the cart endpoints under /carts and the legacy /cart prefix.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, guard *middleware.Guard) {
	for _, prefix := range []string{"/carts", "/cart"} {
		carts := router.Group(prefix)
		{
			carts.POST("", guard.Authenticated(), handler.Create)
			carts.GET("", guard.AdminOnly(), handler.List)
			carts.GET("/find/:userId", guard.SelfOrAdmin(middleware.OwnerFromParam("userId")), handler.FindByUser)

			owner := guard.SelfOrAdmin(handler.Owner())
			carts.PUT("/:id", owner, handler.Update)
			carts.DELETE("/:id", owner, handler.Delete)
		}
	}
}
