package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/middleware"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
	"github.com/SaakshamKindra/tumbler-vibe-shop/pricing"
)

// GetOrders godoc
// @Summary List orders
// @Description Retrieve the session's order history, newest first.
// @Tags Storefront - Orders
// @Produce json
// @Success 200 {object} models.ApiResponse "Orders fetched successfully"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/orders [get]
func GetOrders(c *gin.Context) {
	orders, err := orderHistory.List(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not load orders"))
		return
	}

	items := make([]models.OrderHistoryItem, len(orders))
	for i, o := range orders {
		items[i] = models.OrderHistoryItem{
			OrderID:               o.OrderID,
			OrderDate:             o.OrderDate,
			EstimatedDeliveryDate: o.EstimatedDeliveryDate,
			ItemCount:             o.TotalItems(),
			Total:                 pricing.Round2(o.Total),
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", items))
}
