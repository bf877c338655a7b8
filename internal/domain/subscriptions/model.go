package subscriptions

import (
	"time"

	"subscription-box/internal/domain/plans"
)

// Subscription tracks one customer/plan pairing through its lifecycle. The
// current period is the half-open interval [CurrentPeriodStart,
// CurrentPeriodEnd) the customer is paid through.
type Subscription struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	PlanID uint        `gorm:"not null" json:"plan_id"`
	Plan   *plans.Plan `json:"plan,omitempty"`

	Status Status `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	CurrentPeriodStart time.Time `json:"current_period_start"`
	CurrentPeriodEnd   time.Time `json:"current_period_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
