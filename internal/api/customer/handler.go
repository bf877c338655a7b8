package customer

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"subscription-box/internal/api/respond"
	"subscription-box/internal/domain/users"
	"subscription-box/internal/engine"
)

type Handler struct {
	DB     *gorm.DB
	Engine *engine.Engine
}

func NewHandler(db *gorm.DB, eng *engine.Engine) *Handler {
	return &Handler{DB: db, Engine: eng}
}

func (h *Handler) Profile(c *gin.Context) {
	var user users.User
	if err := h.DB.First(&user, c.GetUint("user_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var input struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user users.User
	if err := h.DB.First(&user, c.GetUint("user_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	if err := h.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"message": "Profile updated successfully",
	})
}

// Subscription returns the customer's most recent subscription in any status,
// or null when they never subscribed.
func (h *Handler) Subscription(c *gin.Context) {
	sub, err := h.Engine.Subscription(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"subscription": sub,
	})
}

func (h *Handler) PauseSubscription(c *gin.Context) {
	_, err := h.Engine.Pause(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active subscription found"})
			return
		}
		respond.EngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subscription paused successfully",
	})
}

func (h *Handler) ResumeSubscription(c *gin.Context) {
	_, err := h.Engine.Resume(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No paused subscription found"})
			return
		}
		respond.EngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subscription resumed successfully",
	})
}

func (h *Handler) CancelSubscription(c *gin.Context) {
	_, err := h.Engine.Cancel(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active subscription found"})
			return
		}
		respond.EngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subscription cancelled successfully",
	})
}

func (h *Handler) Orders(c *gin.Context) {
	orders, err := h.Engine.Orders(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
	})
}
