package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecomm/entity"
	"ecomm/pkg/events"
	"ecomm/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart        = errors.New("cart is empty, cannot create order")
	ErrInvalidPayMethod = errors.New("invalid payment method")
)

// deliveryCharge is added to every order unless the buyer's tier is Premium.
var deliveryCharge = decimal.NewFromInt(10)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
	Publisher   events.Publisher
	Log         zerolog.Logger
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	productRepo *repository.ProductRepository,
	publisher events.Publisher,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repo,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Publisher:   publisher,
		Log:         log,
	}
}

// ----- DTOs from Controller -----

type CreateOrderReq struct {
	Paymethod entity.PaymentMethod `json:"paymethod"`
	Address   string               `json:"address" binding:"required,max=500"`
}

type OrderItemView struct {
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type OrderView struct {
	OrderID       uint                 `json:"orderId"`
	UserID        uint                 `json:"userId"`
	Username      string               `json:"username,omitempty"`
	UserEmail     string               `json:"userEmail,omitempty"`
	OrderDate     time.Time            `json:"orderDate"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
	Address       string               `json:"address"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	Items         []OrderItemView      `json:"items"`
}

// Create turns the user's cart into an order.
//
// Validation happens up front against a snapshot of the cart and current
// product rows; the writes (order + items, stock decrement, cart clear) run
// in one transaction and either all land or none do. The stock decrement
// re-checks availability with a conditional update, so two orders racing
// for the last unit cannot both win.
func (s *OrderService) Create(userID uint, tier string, req *CreateOrderReq) (*OrderView, error) {
	if !req.Paymethod.Valid() {
		return nil, ErrInvalidPayMethod
	}

	lines, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	products, err := s.ProductRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	// Price each line at the product's current price, not anything cached
	// in the cart, and snapshot it into the order item.
	items := make([]entity.OrderItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		p, ok := products[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %d not found", line.ProductID)
		}
		if p.StockQuantity < line.Quantity {
			return nil, insufficientStock(p.Name, p.StockQuantity, line.Quantity)
		}
		items = append(items, entity.OrderItem{
			ProductID: p.ID,
			Quantity:  line.Quantity,
			UnitPrice: p.Price,
		})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	if tier != entity.TierPremium {
		total = total.Add(deliveryCharge)
	}

	order := entity.Order{
		UserID:        userID,
		OrderDate:     time.Now().UTC(),
		Status:        entity.OrderPending,
		PaymentStatus: entity.PaymentPending,
		PaymentMethod: req.Paymethod,
		Address:       req.Address,
		TotalAmount:   total,
		Items:         items,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, line := range lines {
			ok, err := s.ProductRepo.DecrementStock(tx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// a concurrent order got there first
				p := products[line.ProductID]
				return insufficientStock(p.Name, p.StockQuantity, line.Quantity)
			}
		}
		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	s.publishPlaced(&order)

	views := make([]OrderItemView, 0, len(order.Items))
	for _, it := range order.Items {
		views = append(views, OrderItemView{
			ProductID:   it.ProductID,
			ProductName: products[it.ProductID].Name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
	return &OrderView{
		OrderID:       order.ID,
		UserID:        userID,
		OrderDate:     order.OrderDate,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		PaymentMethod: order.PaymentMethod,
		Address:       order.Address,
		TotalAmount:   order.TotalAmount,
		Items:         views,
	}, nil
}

// List returns all orders for admins, the caller's own otherwise.
func (s *OrderService) List(userID uint, role string) ([]OrderView, error) {
	var (
		orders []entity.Order
		err    error
	)
	if role == entity.RoleAdmin {
		orders, err = s.Repo.ListAll()
	} else {
		orders, err = s.Repo.ListForUser(userID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		items := make([]OrderItemView, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, OrderItemView{
				ProductID:   it.ProductID,
				ProductName: it.Product.Name,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				TotalPrice:  it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
			})
		}
		out = append(out, OrderView{
			OrderID:       o.ID,
			UserID:        o.UserID,
			Username:      o.User.Username,
			UserEmail:     o.User.Email,
			OrderDate:     o.OrderDate,
			Status:        o.Status,
			PaymentStatus: o.PaymentStatus,
			PaymentMethod: o.PaymentMethod,
			Address:       o.Address,
			TotalAmount:   o.TotalAmount,
			Items:         items,
		})
	}
	return out, nil
}

func (s *OrderService) publishPlaced(order *entity.Order) {
	ev := events.OrderPlaced{
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		PlacedAt:    order.OrderDate,
	}
	for _, it := range order.Items {
		ev.Items = append(ev.Items, events.OrderLine{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Publisher.PublishOrderPlaced(ctx, ev); err != nil {
		// the order is already committed; losing the event is acceptable
		s.Log.Error().Err(err).Uint("order_id", order.ID).Msg("publish order.placed failed")
	}
}

func insufficientStock(name string, available, requested int) error {
	return fmt.Errorf("insufficient stock for product %s. available: %d, requested: %d",
		name, available, requested)
}
