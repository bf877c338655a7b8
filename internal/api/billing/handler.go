package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"subscription-box/internal/api/respond"
	"subscription-box/internal/engine"
)

type Handler struct {
	Engine *engine.Engine
}

func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{Engine: eng}
}

// Subscribe runs the simulated checkout: charge the plan price and open the
// subscription with its first payment and order in one shot.
func (h *Handler) Subscribe(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		PlanID uint            `json:"plan_id" binding:"required"`
		Amount decimal.Decimal `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan ID and amount are required"})
		return
	}

	res, err := h.Engine.Subscribe(c.Request.Context(), userID, input.PlanID, input.Amount)
	if err != nil {
		respond.EngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"transaction_id": res.TransactionID,
		"subscription":   res.Subscription,
		"message":        "Payment processed successfully (simulated)",
	})
}

func (h *Handler) History(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payments, err := h.Engine.Payments(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"payments": payments,
	})
}
