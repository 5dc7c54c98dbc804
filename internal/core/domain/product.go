package domain

import "github.com/govalues/decimal"

type Product struct {
	ID       uint64
	SellerID uint64
	Name     string
	Price    decimal.Decimal
	StockQty int64
}

// StockDecrement is one product mutation requested by a fulfillment
// transition. Applied conditionally: the repository refuses the whole
// transaction when stock would go negative.
type StockDecrement struct {
	ProductID uint64
	Quantity  int64
}
