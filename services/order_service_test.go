package services

import (
	"testing"

	"ecomm/entity"
	"ecomm/pkg/events"
	"ecomm/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		events.Noop{},
		zerolog.Nop(),
	)
}

func addCartLine(t *testing.T, db *gorm.DB, userID, productID uint, qty int) {
	t.Helper()
	require.NoError(t, db.Create(&entity.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
	}).Error)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := createUser(t, db, "buyer@test.dev", entity.TierNormal)

	_, err := svc.Create(user.ID, user.Tier, &CreateOrderReq{
		Paymethod: entity.CreditCard,
		Address:   "1 Test Lane",
	})
	require.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateOrderInvalidPayMethod(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := createUser(t, db, "buyer@test.dev", entity.TierNormal)

	_, err := svc.Create(user.ID, user.Tier, &CreateOrderReq{
		Paymethod: entity.PaymentMethod(99),
		Address:   "1 Test Lane",
	})
	require.ErrorIs(t, err, ErrInvalidPayMethod)
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := createUser(t, db, "buyer@test.dev", entity.TierNormal)
	p := createProduct(t, db, "Keyboard", 49.99, 2)
	addCartLine(t, db, user.ID, p.ID, 3)

	_, err := svc.Create(user.ID, user.Tier, &CreateOrderReq{
		Paymethod: entity.UPI,
		Address:   "1 Test Lane",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "insufficient stock for product Keyboard")

	// nothing must have been written
	var orders int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.Zero(t, orders)

	var fresh entity.Product
	require.NoError(t, db.First(&fresh, p.ID).Error)
	require.Equal(t, 2, fresh.StockQuantity)

	var cart int64
	require.NoError(t, db.Model(&entity.CartItem{}).Count(&cart).Error)
	require.EqualValues(t, 1, cart)
}

func TestCreateOrderStockGuardRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := createUser(t, db, "buyer@test.dev", entity.TierNormal)
	p := createProduct(t, db, "Webcam", 45, 3)

	// two lines for the same product: each passes the per-line check
	// against the snapshot, but together they overdraw the stock, so the
	// conditional decrement refuses the second one mid-transaction
	addCartLine(t, db, user.ID, p.ID, 2)
	addCartLine(t, db, user.ID, p.ID, 2)

	_, err := svc.Create(user.ID, user.Tier, &CreateOrderReq{
		Paymethod: entity.CreditCard,
		Address:   "1 Test Lane",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "insufficient stock for product Webcam")

	// the whole transaction rolled back: no order, no items, stock and
	// cart exactly as before
	var orders, items int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&items).Error)
	require.Zero(t, orders)
	require.Zero(t, items)

	var fresh entity.Product
	require.NoError(t, db.First(&fresh, p.ID).Error)
	require.Equal(t, 3, fresh.StockQuantity)

	var cart int64
	require.NoError(t, db.Model(&entity.CartItem{}).Where("user_id = ?", user.ID).Count(&cart).Error)
	require.EqualValues(t, 2, cart)
}

func TestCreateOrderTotalsWithDeliveryCharge(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := createUser(t, db, "buyer@test.dev", entity.TierNormal)
	p := createProduct(t, db, "Monitor", 100, 5)
	addCartLine(t, db, user.ID, p.ID, 2)

	view, err := svc.Create(user.ID, user.Tier, &CreateOrderReq{
		Paymethod: entity.CashOnDelivery,
		Address:   "1 Test Lane",
	})
	require.NoError(t, err)

	// 2 x 100 plus the 10 delivery charge
	require.True(t, view.TotalAmount.Equal(decimal.NewFromInt(210)),
		"got total %s", view.TotalAmount)
	require.Len(t, view.Items, 1)
	require.True(t, view.Items[0].UnitPrice.Equal(decimal.NewFromInt(100)))

	var fresh entity.Product
	require.NoError(t, db.First(&fresh, p.ID).Error)
	require.Equal(t, 3, fresh.StockQuantity)

	var cart int64
	require.NoError(t, db.Model(&entity.CartItem{}).Where("user_id = ?", user.ID).Count(&cart).Error)
	require.Zero(t, cart)
}

func TestCreateOrderPremiumSkipsDeliveryCharge(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := createUser(t, db, "premium@test.dev", entity.TierPremium)
	p := createProduct(t, db, "Monitor", 100, 5)
	addCartLine(t, db, user.ID, p.ID, 2)

	view, err := svc.Create(user.ID, user.Tier, &CreateOrderReq{
		Paymethod: entity.CreditCard,
		Address:   "1 Test Lane",
	})
	require.NoError(t, err)
	require.True(t, view.TotalAmount.Equal(decimal.NewFromInt(200)),
		"got total %s", view.TotalAmount)
}

func TestOrderItemPriceIsSnapshotted(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := createUser(t, db, "buyer@test.dev", entity.TierNormal)
	p := createProduct(t, db, "Headphones", 80, 5)
	addCartLine(t, db, user.ID, p.ID, 1)

	view, err := svc.Create(user.ID, user.Tier, &CreateOrderReq{
		Paymethod: entity.DebitCard,
		Address:   "1 Test Lane",
	})
	require.NoError(t, err)

	// a later price change must not touch the stored order line
	require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", p.ID).
		Update("price", decimal.NewFromInt(120)).Error)

	var item entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", view.OrderID).First(&item).Error)
	require.True(t, item.UnitPrice.Equal(decimal.NewFromInt(80)))
}

func TestListOrdersScopedByRole(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	alice := createUser(t, db, "alice@test.dev", entity.TierNormal)
	bob := createUser(t, db, "bob@test.dev", entity.TierNormal)
	p := createProduct(t, db, "Mouse", 25, 10)

	for _, u := range []*entity.User{alice, bob} {
		addCartLine(t, db, u.ID, p.ID, 1)
		_, err := svc.Create(u.ID, u.Tier, &CreateOrderReq{
			Paymethod: entity.NetBanking,
			Address:   "1 Test Lane",
		})
		require.NoError(t, err)
	}

	own, err := svc.List(alice.ID, entity.RoleCustomer)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, alice.ID, own[0].UserID)

	all, err := svc.List(alice.ID, entity.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
