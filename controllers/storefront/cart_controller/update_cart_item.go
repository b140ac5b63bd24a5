package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/cart"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// UpdateCartItem godoc
// @Summary Update cart line quantity
// @Description Set the quantity of an existing cart line. A quantity of zero or less removes the line; quantities above inventory clamp to it. Updating an absent line is a no-op.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param item body models.UpdateCartItemRequest true "Line to update"
// @Success 200 {object} models.ApiResponse "Cart updated"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /store/cart/items [patch]
func UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "product_id and variant are required"))
		return
	}

	ctx := c.Request.Context()
	var snapshot models.CartSnapshot
	mutErr := cartManager.With(ctx, sessionID(c), func(s *cart.Store) error {
		err := s.SetQuantity(ctx, req.ProductID, req.Variant, req.Quantity)
		snapshot = s.Snapshot()
		return err
	})
	respondAfterMutation(c, "Cart updated", snapshot, mutErr)
}
