package entity

import (
	"gorm.io/gorm"
)

// Access roles and subscription tiers are separate concerns: Role gates
// endpoints, Tier gates perks (delivery fee waiver, trending deals).
const (
	RoleCustomer = "Customer"
	RoleAdmin    = "Admin"

	TierNormal  = "Normal"
	TierPremium = "Premium"
)

type User struct {
	gorm.Model
	Username     string `json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash []byte `json:"-"`
	PasswordSalt []byte `json:"-"`
	Role         string `gorm:"not null;default:Customer" json:"role"`
	Tier         string `gorm:"not null;default:Normal" json:"tier"`

	// Relations — preload only when needed
	Orders        []Order        `json:"-"`
	Subscriptions []Subscription `json:"-"`
	Reviews       []Review       `json:"-"`
}
