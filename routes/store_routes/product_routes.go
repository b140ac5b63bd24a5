package store_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/controllers/storefront/product_controller"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")

	products.GET("", product_controller.GetProducts)
	products.GET("/featured", product_controller.GetFeaturedProducts)
	products.GET("/new-arrivals", product_controller.GetNewArrivals)
	products.GET("/best-sellers", product_controller.GetBestSellers)
	products.GET("/filters", product_controller.GetFilterMetadata)
	products.GET("/:id", product_controller.GetProductByID)
}
