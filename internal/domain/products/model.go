package products

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a box-inventory item managed by admins. Products are not sold
// individually; they are the stock the fulfillment side draws on when packing
// orders.
type Product struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	IsActive      bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}
