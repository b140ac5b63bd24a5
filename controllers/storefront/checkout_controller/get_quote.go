package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/middleware"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
	"github.com/SaakshamKindra/tumbler-vibe-shop/pricing"
)

// GetQuote godoc
// @Summary Price the cart
// @Description Compute subtotal, shipping, tax and total for the session's cart under a shipping method. Standard shipping is free above the configured subtotal threshold; express is always a flat fee.
// @Tags Storefront - Checkout
// @Accept json
// @Produce json
// @Param quote body models.QuoteRequest true "Shipping method selection"
// @Success 200 {object} models.ApiResponse "Quote computed"
// @Failure 400 {object} models.ApiResponse "Invalid shipping method"
// @Router /store/checkout/quote [post]
func GetQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "shipping_method must be standard or express"))
		return
	}

	snapshot, err := cartManager.View(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not load cart"))
		return
	}

	quote := pricing.Rounded(pricingConfig.Quote(snapshot, req.ShippingMethod))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quote computed", gin.H{
		"breakdown":   quote,
		"total_items": snapshot.TotalItems,
	}))
}
