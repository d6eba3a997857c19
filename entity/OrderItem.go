package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"` // preload only when the product name is needed

	Quantity int `json:"quantity"`

	// UnitPrice is the product price at purchase time. It never changes
	// after the order is written, no matter what happens to Product.Price.
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2)" json:"unitPrice"`
}
