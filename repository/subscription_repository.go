package repository

import (
	"errors"
	"time"

	"ecomm/entity"

	"gorm.io/gorm"
)

type SubscriptionRepository struct{ DB *gorm.DB }

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) ListForUser(userID uint) ([]entity.Subscription, error) {
	var out []entity.Subscription
	err := r.DB.Where("user_id = ?", userID).Find(&out).Error
	return out, err
}

// Latest returns the most recent subscription by start date, or nil.
func (r *SubscriptionRepository) Latest(userID uint) (*entity.Subscription, error) {
	var s entity.Subscription
	err := r.DB.Where("user_id = ?", userID).
		Order("start_date DESC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubscriptionRepository) Create(tx *gorm.DB, s *entity.Subscription) error {
	return tx.Create(s).Error
}

// End closes the subscription at the given instant.
func (r *SubscriptionRepository) End(tx *gorm.DB, subID uint, at time.Time) error {
	return tx.Model(&entity.Subscription{}).Where("id = ?", subID).
		Update("end_date", at).Error
}
