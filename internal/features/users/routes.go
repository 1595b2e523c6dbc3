package users

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/middleware"
)

// RegisterRoutes mounts /users. /find/:id and /stats are registered before /:id.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, guard *middleware.Guard) {
	users := router.Group("/users")
	{
		users.GET("", guard.AdminOnly(), handler.List)
		users.GET("/stats", guard.AdminOnly(), handler.Stats)
		users.GET("/find/:id", guard.AdminOnly(), handler.Find)

		self := guard.SelfOrAdmin(middleware.OwnerFromParam("id"))
		users.PUT("/:id", self, handler.Update)
		users.DELETE("/:id", self, handler.Delete)
	}
}
