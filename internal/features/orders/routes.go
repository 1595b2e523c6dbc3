package orders

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler, guard *middleware.Guard) {
	orders := router.Group("/orders")
	{
		orders.POST("", guard.Authenticated(), handler.Create)
		orders.GET("", guard.AdminOnly(), handler.List)
		orders.GET("/income", guard.AdminOnly(), handler.Income)
		orders.GET("/find/:userId", guard.SelfOrAdmin(middleware.OwnerFromParam("userId")), handler.FindByUser)
		orders.PUT("/:id", guard.AdminOnly(), handler.Update)
		orders.DELETE("/:id", guard.AdminOnly(), handler.Delete)
	}
}
