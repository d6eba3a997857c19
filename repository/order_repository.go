package repository

import (
	"ecomm/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// CreateOrder inserts the order and its items in the caller's transaction.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// ListAll returns every order, newest first. Admin view.
func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Order("order_date DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Order("order_date DESC").
		Find(&out).Error
	return out, err
}
