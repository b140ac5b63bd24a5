package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// GetNewArrivals godoc
// @Summary Get new arrivals
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "New arrivals fetched successfully"
// @Router /store/products/new-arrivals [get]
func GetNewArrivals(c *gin.Context) {
	products := catalogStore.NewArrivals(c.Request.Context())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "New arrivals fetched successfully", gin.H{
		"products": products,
		"count":    len(products),
	}))
}
