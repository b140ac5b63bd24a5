package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/cart"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// AddCartItem godoc
// @Summary Add item to cart
// @Description Add a quantity of a product variant to the cart. Adding a (product, variant) pair already in the cart merges into the existing line; quantity never exceeds available inventory.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.ApiResponse "Item added to cart"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/cart/items [post]
func AddCartItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "product_id, quantity and variant are required"))
		return
	}

	ctx := c.Request.Context()
	product, err := cartManager.Catalog().ByID(ctx, req.ProductID)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var snapshot models.CartSnapshot
	mutErr := cartManager.With(ctx, sessionID(c), func(s *cart.Store) error {
		err := s.AddItem(ctx, product, req.Quantity, req.Variant)
		snapshot = s.Snapshot()
		return err
	})
	respondAfterMutation(c, "Item added to cart", snapshot, mutErr)
}
