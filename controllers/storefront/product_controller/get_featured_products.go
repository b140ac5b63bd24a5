package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// GetFeaturedProducts godoc
// @Summary Get featured products
// @Description New or best-selling products, capped at four, in catalog order.
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "Featured products fetched successfully"
// @Router /store/products/featured [get]
func GetFeaturedProducts(c *gin.Context) {
	products := catalogStore.Featured(c.Request.Context())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured products fetched successfully", gin.H{
		"products": products,
		"count":    len(products),
	}))
}
