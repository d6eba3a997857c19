package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name          string          `gorm:"not null;size:100" json:"name"`
	Description   string          `gorm:"size:500" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(18,2)" json:"price"`
	ImageURL      string          `json:"imageUrl"`
	CategoryID    uint            `json:"categoryId"`
	Brand         string          `json:"brand"`
	StockQuantity int             `json:"stockQuantity"`
	Rating        float64         `json:"rating"`       // average rating
	TotalRatings  int             `json:"totalRatings"` // count of ratings
	IsFeatured    bool            `json:"isFeatured"`
}
