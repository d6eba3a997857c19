package services

import (
	"context"
	"testing"

	"ecomm/entity"
	"ecomm/pkg/cache"
	"ecomm/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(db *gorm.DB) *ProductService {
	return NewProductService(
		db,
		repository.NewProductRepository(db),
		repository.NewReviewRepository(db),
		repository.NewWishlistRepository(db),
		cache.NewMemory(),
	)
}

func TestFeaturedServesStaleCacheWithinTTL(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)
	p := createProduct(t, db, "Monitor", 100, 5)
	require.NoError(t, db.Model(p).Update("is_featured", true).Error)

	ctx := context.Background()
	first, err := svc.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// flagging another product does not reach the cached entry
	p2 := createProduct(t, db, "Keyboard", 50, 5)
	require.NoError(t, db.Model(p2).Update("is_featured", true).Error)

	second, err := svc.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)

	// once the entry is gone the fresh flag shows up
	require.NoError(t, svc.Cache.Invalidate(ctx, featuredCacheKey))
	third, err := svc.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, third, 2)
}

func TestSearchFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)
	createProduct(t, db, "Gaming Mouse", 60, 5)
	createProduct(t, db, "Office Mouse", 20, 5)
	createProduct(t, db, "Keyboard", 45, 5)

	byName, err := svc.Search(repository.ProductFilter{Query: "mouse"})
	require.NoError(t, err)
	require.Len(t, byName, 2)

	min := decimal.NewFromInt(40)
	cheapMice, err := svc.Search(repository.ProductFilter{Query: "mouse", MinPrice: &min})
	require.NoError(t, err)
	require.Len(t, cheapMice, 1)
	require.Equal(t, "Gaming Mouse", cheapMice[0].Name)

	sorted, err := svc.Search(repository.ProductFilter{Sort: 1})
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	require.Equal(t, "Office Mouse", sorted[0].Name)
}

func TestAddReviewRecomputesRating(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)
	u1 := createUser(t, db, "a@test.dev", entity.TierNormal)
	u2 := createUser(t, db, "b@test.dev", entity.TierNormal)
	p := createProduct(t, db, "Monitor", 100, 5)

	_, err := svc.AddReview(u1.ID, p.ID, 5, "great")
	require.NoError(t, err)
	_, err = svc.AddReview(u2.ID, p.ID, 2, "meh")
	require.NoError(t, err)

	var fresh entity.Product
	require.NoError(t, db.First(&fresh, p.ID).Error)
	require.InDelta(t, 3.5, fresh.Rating, 0.001)
	require.Equal(t, 2, fresh.TotalRatings)
}

func TestAddReviewRejectsOutOfRange(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)
	u := createUser(t, db, "a@test.dev", entity.TierNormal)
	p := createProduct(t, db, "Monitor", 100, 5)

	_, err := svc.AddReview(u.ID, p.ID, 0, "")
	require.ErrorIs(t, err, ErrInvalidRating)
	_, err = svc.AddReview(u.ID, p.ID, 6, "")
	require.ErrorIs(t, err, ErrInvalidRating)
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)
	u := createUser(t, db, "a@test.dev", entity.TierNormal)
	p := createProduct(t, db, "Monitor", 100, 5)

	first, err := svc.AddToWishlist(u.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	again, err := svc.AddToWishlist(u.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, again, 1)

	removed, err := svc.RemoveFromWishlist(u.ID, p.ID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = svc.RemoveFromWishlist(u.ID, p.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)
	u := createUser(t, db, "a@test.dev", entity.TierNormal)

	list, err := svc.AddToWishlist(u.ID, 999)
	require.NoError(t, err)
	require.Empty(t, list)
}
