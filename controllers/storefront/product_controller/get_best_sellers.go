package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// GetBestSellers godoc
// @Summary Get best sellers
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "Best sellers fetched successfully"
// @Router /store/products/best-sellers [get]
func GetBestSellers(c *gin.Context) {
	products := catalogStore.BestSellers(c.Request.Context())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Best sellers fetched successfully", gin.H{
		"products": products,
		"count":    len(products),
	}))
}
