package services

import (
	"errors"

	"ecomm/entity"
	"ecomm/repository"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type CartService struct {
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{CartRepo: cr, ProductRepo: pr}
}

// CartLine is a cart row with the product's current price; prices are only
// snapshotted at order time, never in the cart.
type CartLine struct {
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

func (s *CartService) Get(userID uint) ([]CartLine, decimal.Decimal, error) {
	items, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	lines := make([]CartLine, 0, len(items))
	cartPrice := decimal.Zero
	for _, it := range items {
		lineTotal := it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		lines = append(lines, CartLine{
			ProductID:   it.ProductID,
			ProductName: it.Product.Name,
			Price:       it.Product.Price,
			Quantity:    it.Quantity,
			Total:       lineTotal,
		})
		cartPrice = cartPrice.Add(lineTotal)
	}
	return lines, cartPrice, nil
}

// Add merges the quantity into an existing (user, product) line or creates one.
func (s *CartService) Add(userID, productID uint, qty int) error {
	if _, err := s.ProductRepo.FindByID(productID); err != nil {
		return ErrProductNotFound
	}

	line, err := s.CartRepo.FindLine(userID, productID)
	if err != nil {
		return err
	}
	if line != nil {
		line.Quantity += qty
		return s.CartRepo.Save(line)
	}
	return s.CartRepo.Create(&entity.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
	})
}

// UpdateQuantity sets the line's quantity; zero or less removes the line.
func (s *CartService) UpdateQuantity(userID, productID uint, qty int) error {
	if qty <= 0 {
		return s.CartRepo.RemoveLine(userID, productID)
	}
	return s.CartRepo.UpdateQuantity(userID, productID, qty)
}

func (s *CartService) Remove(userID, productID uint) error {
	return s.CartRepo.RemoveLine(userID, productID)
}

func (s *CartService) Clear(userID uint) error {
	return s.CartRepo.Clear(s.CartRepo.DB, userID)
}
