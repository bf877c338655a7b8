package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"subscription-box/internal/domain/billing"
	"subscription-box/internal/domain/subscriptions"
	"subscription-box/internal/domain/users"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

type DashboardStats struct {
	TotalUsers             int64           `json:"total_users"`
	ActiveSubscriptions    int64           `json:"active_subscriptions"`
	PausedSubscriptions    int64           `json:"paused_subscriptions"`
	CancelledSubscriptions int64           `json:"cancelled_subscriptions"`
	TotalRevenue           decimal.Decimal `json:"total_revenue"`
	TotalOrders            int64           `json:"total_orders"`
}

type CustomerRow struct {
	ID                 uint      `json:"id"`
	Email              string    `json:"email"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	CreatedAt          time.Time `json:"created_at"`
	SubscriptionStatus *string   `json:"subscription_status,omitempty"`
	PlanName           *string   `json:"plan_name,omitempty"`
}

type SubscriptionRow struct {
	ID                 uint            `json:"id"`
	Email              string          `json:"email"`
	FirstName          string          `json:"first_name"`
	LastName           string          `json:"last_name"`
	PlanName           string          `json:"plan_name"`
	Price              decimal.Decimal `json:"price"`
	Status             string          `json:"status"`
	CurrentPeriodStart time.Time       `json:"current_period_start"`
	CurrentPeriodEnd   time.Time       `json:"current_period_end"`
	CreatedAt          time.Time       `json:"created_at"`
}

func (h *Handler) Dashboard(c *gin.Context) {
	var stats DashboardStats

	if err := h.DB.Model(&users.User{}).Where("role = ?", users.RoleCustomer).Count(&stats.TotalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	counts := map[subscriptions.Status]*int64{
		subscriptions.StatusActive:    &stats.ActiveSubscriptions,
		subscriptions.StatusPaused:    &stats.PausedSubscriptions,
		subscriptions.StatusCancelled: &stats.CancelledSubscriptions,
	}
	for status, dst := range counts {
		if err := h.DB.Model(&subscriptions.Subscription{}).Where("status = ?", status).Count(dst).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
			return
		}
	}

	err := h.DB.Model(&billing.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", billing.PaymentCompleted).
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	if err := h.DB.Model(&billing.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

func (h *Handler) Customers(c *gin.Context) {
	var rows []CustomerRow
	err := h.DB.Table("users").
		Select(`users.id, users.email, users.first_name, users.last_name, users.created_at,
			subscriptions.status AS subscription_status, plans.name AS plan_name`).
		Joins("LEFT JOIN subscriptions ON subscriptions.user_id = users.id").
		Joins("LEFT JOIN plans ON plans.id = subscriptions.plan_id").
		Where("users.role = ?", users.RoleCustomer).
		Order("users.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"customers": rows,
	})
}

func (h *Handler) Subscriptions(c *gin.Context) {
	var rows []SubscriptionRow
	err := h.DB.Table("subscriptions").
		Select(`subscriptions.id, users.email, users.first_name, users.last_name,
			plans.name AS plan_name, plans.price, subscriptions.status,
			subscriptions.current_period_start, subscriptions.current_period_end,
			subscriptions.created_at`).
		Joins("JOIN users ON users.id = subscriptions.user_id").
		Joins("JOIN plans ON plans.id = subscriptions.plan_id").
		Order("subscriptions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscriptions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"subscriptions": rows,
	})
}
