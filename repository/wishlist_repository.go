package repository

import (
	"ecomm/entity"

	"gorm.io/gorm"
)

type WishlistRepository struct{ DB *gorm.DB }

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{DB: db}
}

func (r *WishlistRepository) Exists(userID, productID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Wishlist{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *WishlistRepository) Add(userID, productID uint) error {
	return r.DB.Create(&entity.Wishlist{UserID: userID, ProductID: productID}).Error
}

// Remove reports whether a row was actually deleted.
func (r *WishlistRepository) Remove(userID, productID uint) (bool, error) {
	res := r.DB.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&entity.Wishlist{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Products returns the wished-for products themselves.
func (r *WishlistRepository) Products(userID uint) ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Model(&entity.Product{}).
		Joins("JOIN wishlists w ON w.product_id = products.id").
		Where("w.user_id = ? AND w.deleted_at IS NULL", userID).
		Find(&out).Error
	return out, err
}
