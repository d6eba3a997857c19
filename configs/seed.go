package configs

import (
	"log"

	"ecomm/entity"
	"ecomm/utils"

	"github.com/shopspring/decimal"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, salt, err := utils.HashPassword(pass)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:     "Admin",
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         entity.RoleAdmin,
		Tier:         entity.TierNormal,
	}
	return db.Create(&admin).Error
}

// SeedCatalog loads starter categories and products on an empty database.
func SeedCatalog() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []entity.ProductCategory{
		{CategoryName: "Electronics", ImageURL: "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=400&h=300&fit=crop"},
		{CategoryName: "Clothing", ImageURL: "https://images.unsplash.com/photo-1445205170230-053b83016050?w=400&h=300&fit=crop"},
		{CategoryName: "Home & Garden", ImageURL: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop"},
		{CategoryName: "Sports & Outdoors", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	products := []entity.Product{
		{
			Name: "Wireless Headphones", Brand: "Sonic",
			Description: "Over-ear wireless headphones with active noise cancellation.",
			Price:       decimal.NewFromFloat(129.99),
			CategoryID:  categories[0].ID, StockQuantity: 40,
			Rating: 4.5, TotalRatings: 210, IsFeatured: true,
		},
		{
			Name: "Smart Watch", Brand: "Pulse",
			Description: "Fitness tracking, heart-rate monitor, 7-day battery.",
			Price:       decimal.NewFromFloat(199.00),
			CategoryID:  categories[0].ID, StockQuantity: 25,
			Rating: 4.2, TotalRatings: 98, IsFeatured: true,
		},
		{
			Name: "Mechanical Keyboard", Brand: "KeyForge",
			Description: "Hot-swappable switches, RGB backlight.",
			Price:       decimal.NewFromFloat(89.50),
			CategoryID:  categories[0].ID, StockQuantity: 60,
			Rating: 4.7, TotalRatings: 340,
		},
		{
			Name: "Denim Jacket", Brand: "Northline",
			Description: "Classic fit denim jacket, stonewashed.",
			Price:       decimal.NewFromFloat(59.99),
			CategoryID:  categories[1].ID, StockQuantity: 80,
			Rating: 4.0, TotalRatings: 45, IsFeatured: true,
		},
		{
			Name: "Running Shoes", Brand: "Stride",
			Description: "Lightweight trainers with cushioned sole.",
			Price:       decimal.NewFromFloat(74.95),
			CategoryID:  categories[3].ID, StockQuantity: 55,
			Rating: 4.3, TotalRatings: 120,
		},
		{
			Name: "Ceramic Planter Set", Brand: "Verde",
			Description: "Set of three glazed planters with drainage trays.",
			Price:       decimal.NewFromFloat(34.00),
			CategoryID:  categories[2].ID, StockQuantity: 100,
			Rating: 4.8, TotalRatings: 67,
		},
		{
			Name: "Yoga Mat", Brand: "Stride",
			Description: "Non-slip 6mm mat with carry strap.",
			Price:       decimal.NewFromFloat(24.99),
			CategoryID:  categories[3].ID, StockQuantity: 150,
			Rating: 3.9, TotalRatings: 88,
		},
		{
			Name: "Table Lamp", Brand: "Lumen",
			Description: "Dimmable bedside lamp, warm white.",
			Price:       decimal.NewFromFloat(42.50),
			CategoryID:  categories[2].ID, StockQuantity: 35,
			Rating: 4.1, TotalRatings: 53,
		},
	}
	return db.Create(&products).Error
}
