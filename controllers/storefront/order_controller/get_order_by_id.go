package order_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/middleware"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
	"github.com/SaakshamKindra/tumbler-vibe-shop/pricing"
)

// GetOrderByID godoc
// @Summary Get single order
// @Description Retrieve one placed order by its ID. Orders are scoped to the session that placed them.
// @Tags Storefront - Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse "Order fetched successfully"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /store/orders/{id} [get]
func GetOrderByID(c *gin.Context) {
	order, err := orderHistory.Get(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	order.PriceBreakdown = pricing.Rounded(order.PriceBreakdown)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", order))
}
