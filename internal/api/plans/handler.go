package plans

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"subscription-box/internal/domain/plans"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// List returns every purchasable plan, optionally narrowed to one billing
// interval via ?interval=. Deactivated plans are hidden from the storefront
// but stay referenced by existing subscriptions.
func (h *Handler) List(c *gin.Context) {
	var interval plans.BillingInterval
	if raw := c.Query("interval"); raw != "" {
		parsed, err := plans.ParseBillingInterval(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown billing interval"})
			return
		}
		interval = parsed
	}

	query := h.DB.Where("is_active = ?", true)
	if interval != "" {
		query = query.Where("billing_interval = ?", interval)
	}

	var catalog []plans.Plan
	if err := query.Find(&catalog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"plans":   catalog,
	})
}

func (h *Handler) Get(c *gin.Context) {
	var plan plans.Plan
	err := h.DB.Where("id = ? AND is_active = ?", c.Param("id"), true).First(&plan).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"plan":    plan,
	})
}
