package entity

import (
	"gorm.io/gorm"
)

type ProductCategory struct {
	gorm.Model
	CategoryName string `gorm:"not null" json:"categoryName"`
	ImageURL     string `json:"imageUrl"`
}
