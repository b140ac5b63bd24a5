package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/cart"
	"github.com/SaakshamKindra/tumbler-vibe-shop/middleware"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
	"github.com/SaakshamKindra/tumbler-vibe-shop/pricing"
)

var cartManager *cart.Manager

// Init wires the controller to the cart manager. Called once at startup.
func Init(manager *cart.Manager) {
	cartManager = manager
}

// cartView is the presentation shape of a snapshot: subtotal rounded to two
// decimals; internal math stays unrounded.
func cartView(snapshot models.CartSnapshot) gin.H {
	return gin.H{
		"lines":       snapshot.Lines,
		"total_items": snapshot.TotalItems,
		"subtotal":    pricing.Round2(snapshot.Subtotal),
	}
}

// respondAfterMutation maps a cart mutation result to a response. Persistence
// failures are surfaced as a warning on an otherwise-successful response:
// the in-memory cart is the session's source of truth.
func respondAfterMutation(c *gin.Context, message string, snapshot models.CartSnapshot, err error) {
	if err == nil {
		c.JSON(http.StatusOK, models.SuccessResponse(c, message, cartView(snapshot)))
		return
	}

	var validation *models.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, validation.Message))
		return
	}

	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, notFound.Error()))
		return
	}

	var persistence *models.PersistenceError
	if errors.As(err, &persistence) {
		c.JSON(http.StatusOK, models.WarningResponse(c, message,
			"Saved for this session only: storage is temporarily unavailable", cartView(snapshot)))
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
}

func sessionID(c *gin.Context) string {
	return middleware.SessionID(c)
}
