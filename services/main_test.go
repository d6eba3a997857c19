package services

import (
	"fmt"
	"testing"

	"ecomm/entity"
	"ecomm/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database, isolated per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.User{},
		&entity.ProductCategory{},
		&entity.Product{},
		&entity.CartItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Subscription{},
		&entity.Review{},
		&entity.Wishlist{},
	)
	require.NoError(t, err)
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, tier string) *entity.User {
	t.Helper()
	hash, salt, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	u := &entity.User{
		Username:     "tester",
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         entity.RoleCustomer,
		Tier:         tier,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:          name,
		Price:         decimal.NewFromFloat(price),
		StockQuantity: stock,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}
