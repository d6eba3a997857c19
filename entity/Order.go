package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus int

const (
	OrderPending OrderStatus = iota
	OrderCompleted
	OrderFailed
)

type PaymentStatus int

const (
	PaymentPending PaymentStatus = iota
	PaymentPaid
	PaymentFailed
)

type PaymentMethod int

const (
	CreditCard PaymentMethod = iota
	DebitCard
	NetBanking
	UPI
	CashOnDelivery
)

func (m PaymentMethod) Valid() bool {
	return m >= CreditCard && m <= CashOnDelivery
}

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	OrderDate     time.Time       `json:"orderDate"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Address       string          `gorm:"size:500" json:"address"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,2)" json:"totalAmount"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
