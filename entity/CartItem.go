package entity

import (
	"gorm.io/gorm"
)

// CartItem is one cart line: a (user, product) pair with a quantity.
// Lines are deleted when removed, cleared, or turned into an order.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"index:idx_cart_user_product" json:"userId"`
	User   User `json:"-"`

	ProductID uint    `gorm:"index:idx_cart_user_product" json:"productId"`
	Product   Product `json:"-"`

	Quantity int `json:"quantity"`
}
