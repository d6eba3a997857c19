package repository

import (
	"errors"

	"ecomm/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListForUser returns the user's cart lines with products preloaded.
func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var lines []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Preload("Product").
		Find(&lines).Error
	return lines, err
}

// FindLine returns the (user, product) line, or nil when there is none.
func (r *CartRepository) FindLine(userID, productID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	err := r.DB.Where("user_id = ? AND product_id = ?", userID, productID).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) Create(line *entity.CartItem) error {
	return r.DB.Create(line).Error
}

func (r *CartRepository) Save(line *entity.CartItem) error {
	return r.DB.Save(line).Error
}

func (r *CartRepository) UpdateQuantity(userID, productID uint, qty int) error {
	return r.DB.Model(&entity.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", qty).Error
}

func (r *CartRepository) RemoveLine(userID, productID uint) error {
	return r.DB.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&entity.CartItem{}).Error
}

// Clear deletes every cart line of the user. Takes the caller's tx so order
// placement can clear the cart inside its transaction.
func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
