package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"subscription-box/internal/engine"
)

// EngineError maps the engine's error taxonomy onto HTTP status codes. Every
// sentinel gets its own code so clients can act on the outcome; anything else
// is an internal storage failure and stays generic.
func EngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "User already has an active subscription"})
	case errors.Is(err, engine.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
	case errors.Is(err, engine.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No active subscription found"})
	case errors.Is(err, engine.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Subscription cannot change to the requested status"})
	case errors.Is(err, engine.ErrAmountMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Amount does not match the plan price"})
	case errors.Is(err, engine.ErrPaymentDeclined):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment was declined"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
