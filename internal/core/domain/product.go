package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrNegativePrice = errors.New("price must not be negative")
var ErrNegativeStock = errors.New("stock must not be negative")

// Product is a sellable item. Stock is the count of units available and is
// never allowed to go negative: the only mutation paths are the sale flow
// (atomic conditional decrement) and direct product management, both through
// the same repository.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RestockAlert signals that a product's stock dropped below the restock
// threshold after a committed sale.
type RestockAlert struct {
	ProductID int64
	Remaining int64
}
