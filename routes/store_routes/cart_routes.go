package store_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/controllers/storefront/cart_controller"
)

func SetupCartRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")

	cart.GET("", cart_controller.GetCart)
	cart.DELETE("", cart_controller.ClearCart)
	cart.POST("/items", cart_controller.AddCartItem)
	cart.PATCH("/items", cart_controller.UpdateCartItem)
	cart.DELETE("/items", cart_controller.RemoveCartItem)
}
