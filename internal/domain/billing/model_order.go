package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"subscription-box/internal/domain/subscriptions"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
)

// Order is the fulfillment record cut for one billing event. It is created
// pending; the fulfillment pipeline owns every later status.
type Order struct {
	ID             uint                        `gorm:"primaryKey" json:"id"`
	SubscriptionID uint                        `gorm:"index;not null" json:"subscription_id"`
	Subscription   *subscriptions.Subscription `json:"-"`
	Status         OrderStatus                 `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount    decimal.Decimal             `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CreatedAt      time.Time                   `json:"created_at"`
}
