package repository

import (
	"ecomm/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(tx *gorm.DB, review *entity.Review) error {
	return tx.Create(review).Error
}

func (r *ReviewRepository) ListForProduct(productID uint) ([]entity.Review, error) {
	var out []entity.Review
	err := r.DB.Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// Aggregate returns the review count and rating sum for the product, read
// in the caller's transaction so rating recomputes see the new row.
func (r *ReviewRepository) Aggregate(tx *gorm.DB, productID uint) (count int64, sum int64, err error) {
	var row struct {
		Count int64
		Sum   int64
	}
	err = tx.Model(&entity.Review{}).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS sum").
		Where("product_id = ?", productID).
		Scan(&row).Error
	return row.Count, row.Sum, err
}
