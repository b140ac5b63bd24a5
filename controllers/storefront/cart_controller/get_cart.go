package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// GetCart godoc
// @Summary Get cart
// @Description Retrieve the current session's cart with line items, item count and subtotal.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse "Cart fetched successfully"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	snapshot, err := cartManager.View(c.Request.Context(), sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not load cart"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cartView(snapshot)))
}
