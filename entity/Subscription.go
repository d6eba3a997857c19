package entity

import (
	"time"

	"gorm.io/gorm"
)

type Subscription struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Tier      string     `gorm:"not null" json:"tier"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// IsActive reports whether the subscription is still running: no end date,
// or an end date in the future.
func (s *Subscription) IsActive() bool {
	return s.EndDate == nil || s.EndDate.After(time.Now().UTC())
}
