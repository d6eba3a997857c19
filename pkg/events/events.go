// Package events publishes domain events for downstream consumers
// (analytics, fulfilment). Publishing is best-effort: order placement has
// already committed by the time an event goes out.
package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type OrderLine struct {
	ProductID uint            `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type OrderPlaced struct {
	OrderID     uint            `json:"orderId"`
	UserID      uint            `json:"userId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PlacedAt    time.Time       `json:"placedAt"`
	Items       []OrderLine     `json:"items"`
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, ev OrderPlaced) error
	Close() error
}

// Noop is used when no broker is configured.
type Noop struct{}

var _ Publisher = Noop{}

func (Noop) PublishOrderPlaced(context.Context, OrderPlaced) error { return nil }
func (Noop) Close() error                                          { return nil }
