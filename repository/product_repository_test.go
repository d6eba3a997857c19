package repository

import (
	"fmt"
	"testing"

	"ecomm/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Product{}))
	return db
}

func TestDecrementStockGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	p := &entity.Product{
		Name:          "Webcam",
		Price:         decimal.NewFromInt(45),
		StockQuantity: 2,
	}
	require.NoError(t, db.Create(p).Error)

	// more than available: refused, stock untouched
	ok, err := repo.DecrementStock(db, p.ID, 3)
	require.NoError(t, err)
	require.False(t, ok)

	var fresh entity.Product
	require.NoError(t, db.First(&fresh, p.ID).Error)
	require.Equal(t, 2, fresh.StockQuantity)

	// exactly available: allowed, stock drained
	ok, err = repo.DecrementStock(db, p.ID, 2)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, db.First(&fresh, p.ID).Error)
	require.Equal(t, 0, fresh.StockQuantity)

	// nothing left: refused again
	ok, err = repo.DecrementStock(db, p.ID, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDecrementStockUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	ok, err := repo.DecrementStock(db, 999, 1)
	require.NoError(t, err)
	require.False(t, ok)
}
