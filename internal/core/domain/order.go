package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type Order struct {
	ID       uint64
	ClientID uint64
	SellerID uint64
	Total    decimal.Decimal
	Status   OrderStatus
	Items    []OrderItem

	CreatedAt       time.Time
	ReviewStartedAt *time.Time
	ConfirmedAt     *time.Time
	DeliveredAt     *time.Time
	CompletedAt     *time.Time
	CanceledAt      *time.Time
}

type OrderItem struct {
	ID           uint64
	OrderID      uint64
	ProductID    uint64
	ProductName  string
	Quantity     int64
	UnitPrice    decimal.Decimal
	Confirmed    bool
	AvailableQty *int64
	Note         string
}

// Subtotal is quantity times unit price.
func (i OrderItem) Subtotal() (decimal.Decimal, error) {
	qty, err := decimal.New(i.Quantity, 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return i.UnitPrice.Mul(qty)
}

// StampStatus sets the order status and the timestamp column tied to the
// target state. The total is not recomputed here, it is fixed at creation.
func (o *Order) StampStatus(target OrderStatus, now time.Time) {
	o.Status = target
	switch target {
	case OrderStatusReviewing:
		o.ReviewStartedAt = &now
	case OrderStatusConfirmed:
		o.ConfirmedAt = &now
	case OrderStatusDelivered:
		o.DeliveredAt = &now
	case OrderStatusCompleted:
		o.CompletedAt = &now
	case OrderStatusCanceled:
		o.CanceledAt = &now
	}
}
