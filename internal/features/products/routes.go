package products

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/middleware"
)

// RegisterRoutes mounts /products. Reads are public; writes are admin only.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, guard *middleware.Guard) {
	products := router.Group("/products")
	{
		products.GET("", handler.List)
		products.GET("/find/:id", handler.Find)

		admin := guard.AdminOnly()
		products.POST("", admin, handler.Create)
		products.PUT("/:id", admin, handler.Update)
		products.DELETE("/:id", admin, handler.Delete)
		products.POST("/:id/image", admin, handler.UploadImage)
	}
}
