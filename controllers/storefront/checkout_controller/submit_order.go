package checkout_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/cart"
	"github.com/SaakshamKindra/tumbler-vibe-shop/middleware"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
	"github.com/SaakshamKindra/tumbler-vibe-shop/pricing"
)

// SubmitOrder godoc
// @Summary Submit order
// @Description Validate the checkout form, charge the payment method and, on confirmed success only, record the order and clear the cart. A failed payment leaves the cart untouched and can be retried. One submission may be in flight per session.
// @Tags Storefront - Checkout
// @Accept json
// @Produce json
// @Param form body models.CheckoutRequest true "Shipping and payment details"
// @Success 200 {object} models.ApiResponse "Order placed successfully"
// @Failure 400 {object} models.ApiResponse "Validation failed or cart is empty"
// @Failure 402 {object} models.ApiResponse "Payment failed"
// @Failure 409 {object} models.ApiResponse "Submission already in progress"
// @Router /store/checkout [post]
func SubmitOrder(c *gin.Context) {
	sid := middleware.SessionID(c)

	// Rejecting here keeps a duplicate submit from queueing behind the
	// in-flight one on the session lock.
	if checkoutFlow.InFlight(sid) {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A submission is already in progress"))
		return
	}

	var form models.CheckoutRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx := c.Request.Context()
	var order *models.Order
	submitErr := cartManager.With(ctx, sid, func(s *cart.Store) error {
		var err error
		order, err = checkoutFlow.Submit(ctx, sid, s, form)
		return err
	})

	if order != nil {
		if emailer != nil {
			placed := *order
			go func() {
				if err := emailer.SendOrderConfirmationEmail(placed); err != nil {
					log.Printf("⚠️ [checkout.submit] confirmation email for order %s failed: %v", placed.OrderID, err)
				}
			}()
		}
		order.PriceBreakdown = pricing.Rounded(order.PriceBreakdown)
		data := gin.H{"order": order, "redirect": "/orders"}

		var persistence *models.PersistenceError
		if errors.As(submitErr, &persistence) {
			c.JSON(http.StatusOK, models.WarningResponse(c, "Order placed successfully",
				"Order confirmed but not durably saved: storage is temporarily unavailable", data))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Order placed successfully", data))
		return
	}

	var validation *models.ValidationError
	if errors.As(submitErr, &validation) {
		if validation.Message == "cart is empty" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{
				Message:         "Cart is empty",
				Error:           true,
				Data:            gin.H{"redirect": "/cart"},
				RequestedEntity: c.Request.Method + " " + c.FullPath(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.FieldErrorResponse(c, "Please fix the highlighted fields", validation.Fields))
		return
	}

	var submission *models.SubmissionError
	if errors.As(submitErr, &submission) {
		if !submission.Retryable {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A submission is already in progress"))
			return
		}
		c.JSON(http.StatusPaymentRequired, models.ErrorResponse(c, "Payment failed: "+submission.Reason+". Please try again."))
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
}
