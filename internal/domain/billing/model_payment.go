package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"subscription-box/internal/domain/subscriptions"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment is one charge recorded against a subscription. Rows are insert-only;
// the payment ledger is never updated after the fact.
type Payment struct {
	ID             uint                        `gorm:"primaryKey" json:"id"`
	SubscriptionID uint                        `gorm:"index;not null" json:"subscription_id"`
	Subscription   *subscriptions.Subscription `json:"-"`
	Amount         decimal.Decimal             `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status         PaymentStatus               `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	PaymentMethod  string                      `gorm:"type:varchar(20);not null;default:'card'" json:"payment_method"`
	CreatedAt      time.Time                   `json:"created_at"`
}
