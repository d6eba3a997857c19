package configs

import (
	"ecomm/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.ProductCategory{}, &entity.Product{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Subscription{},
		&entity.Review{},
		&entity.Wishlist{},
	)
}
