package cart_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/cart"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// RemoveCartItem godoc
// @Summary Remove cart line
// @Description Delete a (product, variant) line from the cart. Removing a line that is not present succeeds without change.
// @Tags Storefront - Cart
// @Produce json
// @Param product_id query int true "Product ID"
// @Param variant query string true "Variant name"
// @Success 200 {object} models.ApiResponse "Item removed from cart"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /store/cart/items [delete]
func RemoveCartItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Query("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product_id"))
		return
	}
	variant := c.Query("variant")
	if variant == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "variant is required"))
		return
	}

	ctx := c.Request.Context()
	var snapshot models.CartSnapshot
	mutErr := cartManager.With(ctx, sessionID(c), func(s *cart.Store) error {
		err := s.RemoveItem(ctx, productID, variant)
		snapshot = s.Snapshot()
		return err
	})
	respondAfterMutation(c, "Item removed from cart", snapshot, mutErr)
}
