package store_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/controllers/storefront/order_controller"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")

	orders.GET("", order_controller.GetOrders)
	orders.GET("/:id", order_controller.GetOrderByID)
	orders.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)
}
