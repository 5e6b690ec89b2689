package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrSaleNotFound = errors.New("sale not found")
var ErrEmptyOrder = errors.New("sale must contain at least one item")
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// SaleItem is one line of a sale. UnitPrice is the price captured at sale
// time; later product price changes never touch it.
type SaleItem struct {
	ID        int64           `json:"id"`
	SaleID    int64           `json:"sale_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal is the line amount: quantity × unit price, decimal-exact.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Sale is the committed record of a multi-line sale. It exclusively owns its
// items: a sale and its items are created together and never exist apart.
// Invariant: Total equals the sum of the item subtotals.
type Sale struct {
	ID        int64           `json:"id"`
	ClientID  int64           `json:"client_id"`
	Total     decimal.Decimal `json:"total"`
	Items     []SaleItem      `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}
