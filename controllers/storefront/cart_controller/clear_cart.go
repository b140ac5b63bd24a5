package cart_controller

import (
	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/cart"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// ClearCart godoc
// @Summary Clear cart
// @Description Remove every line from the session's cart.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse "Cart cleared"
// @Router /store/cart [delete]
func ClearCart(c *gin.Context) {
	ctx := c.Request.Context()
	var snapshot models.CartSnapshot
	mutErr := cartManager.With(ctx, sessionID(c), func(s *cart.Store) error {
		err := s.Clear(ctx)
		snapshot = s.Snapshot()
		return err
	})
	respondAfterMutation(c, "Cart cleared", snapshot, mutErr)
}
