package http

import (
	"smartmenu-service/internal/notifier"
	"smartmenu-service/internal/service"

	"github.com/gin-contrib/cors"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

func Router(orders service.OrderService, catalog service.CatalogService, hub *notifier.Hub, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	orderHandler := NewOrderHandler(orders, hub, log)
	catalogHandler := NewCatalogHandler(catalog, log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Public storefront surface.
	r.GET("/menu", catalogHandler.Menu)
	r.POST("/orders/calculate", orderHandler.Calculate)
	r.POST("/orders", orderHandler.Create)

	// Staff surface. Authentication is handled by the edge in front of us.
	admin := r.Group("/admin")
	{
		admin.GET("/orders", orderHandler.List)
		admin.GET("/orders/stream", orderHandler.Stream)
		admin.GET("/orders/:id", orderHandler.Get)
		admin.PUT("/orders/:id/status", orderHandler.SetStatus)

		admin.POST("/categories", catalogHandler.CreateCategory)
		admin.GET("/categories", catalogHandler.ListCategories)
		admin.GET("/categories/:id", catalogHandler.GetCategory)
		admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
		admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)

		admin.POST("/products", catalogHandler.CreateProduct)
		admin.GET("/products", catalogHandler.ListProducts)
		admin.GET("/products/:id", catalogHandler.GetProduct)
		admin.PUT("/products/:id", catalogHandler.UpdateProduct)
		admin.DELETE("/products/:id", catalogHandler.DeleteProduct)
		admin.PUT("/products/:id/option-groups", catalogHandler.LinkProductOptions)

		admin.POST("/option-groups", catalogHandler.CreateOptionGroup)
		admin.GET("/option-groups", catalogHandler.ListOptionGroups)
		admin.GET("/option-groups/:id", catalogHandler.GetOptionGroup)
		admin.PUT("/option-groups/:id", catalogHandler.UpdateOptionGroup)
		admin.DELETE("/option-groups/:id", catalogHandler.DeleteOptionGroup)
		admin.POST("/option-groups/:id/values", catalogHandler.CreateOptionValue)

		admin.GET("/option-values/:id", catalogHandler.GetOptionValue)
		admin.PUT("/option-values/:id", catalogHandler.UpdateOptionValue)
		admin.DELETE("/option-values/:id", catalogHandler.DeleteOptionValue)

		admin.POST("/vouchers", catalogHandler.CreateVoucher)
		admin.GET("/vouchers", catalogHandler.ListVouchers)
		admin.GET("/vouchers/:id", catalogHandler.GetVoucher)
		admin.PUT("/vouchers/:id", catalogHandler.UpdateVoucher)
		admin.DELETE("/vouchers/:id", catalogHandler.DeleteVoucher)
	}

	return r
}
