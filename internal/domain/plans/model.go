package plans

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is a purchasable subscription-box plan. Rows are never mutated once a
// subscription references them; retiring a plan flips IsActive instead of
// deleting the row, so existing subscriptions keep their pricing.
type Plan struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Interval    BillingInterval `gorm:"column:billing_interval;type:varchar(20);not null;default:'monthly'" json:"billing_interval"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}
