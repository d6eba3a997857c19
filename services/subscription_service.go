package services

import (
	"errors"
	"time"

	"ecomm/entity"
	"ecomm/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadySubscribed = errors.New("user already has an active subscription")
	ErrInvalidTier       = errors.New("invalid subscription tier")
)

type SubscriptionService struct {
	DB       *gorm.DB
	Repo     *repository.SubscriptionRepository
	UserRepo *repository.UserRepository
}

func NewSubscriptionService(db *gorm.DB, repo *repository.SubscriptionRepository, userRepo *repository.UserRepository) *SubscriptionService {
	return &SubscriptionService{DB: db, Repo: repo, UserRepo: userRepo}
}

type SubscriptionView struct {
	Tier      string     `json:"tier"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	IsActive  bool       `json:"isActive"`
}

// Subscribe opens a one-month subscription and moves the user onto the
// tier. Errors if one is already running.
func (s *SubscriptionService) Subscribe(userID uint, tier string) (*SubscriptionView, error) {
	if tier != entity.TierPremium {
		return nil, ErrInvalidTier
	}

	subs, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range subs {
		if subs[i].IsActive() {
			return nil, ErrAlreadySubscribed
		}
	}

	now := time.Now().UTC()
	end := now.AddDate(0, 1, 0)
	sub := &entity.Subscription{
		UserID:    userID,
		Tier:      tier,
		StartDate: now,
		EndDate:   &end,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, sub); err != nil {
			return err
		}
		return s.UserRepo.UpdateTier(tx, userID, tier)
	})
	if err != nil {
		return nil, err
	}
	return view(sub), nil
}

// Cancel ends the active subscription and drops the user back to Normal.
// Returns false when there is nothing to cancel.
func (s *SubscriptionService) Cancel(userID uint) (bool, error) {
	subs, err := s.Repo.ListForUser(userID)
	if err != nil {
		return false, err
	}
	var active *entity.Subscription
	for i := range subs {
		if subs[i].IsActive() {
			active = &subs[i]
			break
		}
	}
	if active == nil {
		return false, nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.End(tx, active.ID, time.Now().UTC()); err != nil {
			return err
		}
		return s.UserRepo.UpdateTier(tx, userID, entity.TierNormal)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the latest subscription, nil when the user never had one.
func (s *SubscriptionService) Get(userID uint) (*SubscriptionView, error) {
	sub, err := s.Repo.Latest(userID)
	if err != nil || sub == nil {
		return nil, err
	}
	return view(sub), nil
}

func view(sub *entity.Subscription) *SubscriptionView {
	return &SubscriptionView{
		Tier:      sub.Tier,
		StartDate: sub.StartDate,
		EndDate:   sub.EndDate,
		IsActive:  sub.IsActive(),
	}
}
