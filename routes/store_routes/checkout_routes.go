package store_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/controllers/storefront/checkout_controller"
)

func SetupCheckoutRoutes(rg *gin.RouterGroup) {
	checkout := rg.Group("/checkout")

	checkout.POST("", checkout_controller.SubmitOrder)
	checkout.POST("/quote", checkout_controller.GetQuote)
}
