package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

// SaleLineInput is one requested line item: product, quantity, and the unit
// price the caller captured at sale time.
type SaleLineInput struct {
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
}

// CreateSaleInput carries all data needed to commit a sale. If an
// IdempotencyKey is provided and already seen, the previously created sale is
// returned without side effects.
type CreateSaleInput struct {
	ClientID       int64
	Items          []SaleLineInput
	IdempotencyKey string
}

// SaleResult is returned by the service after committing a sale.
type SaleResult struct {
	ID        int64
	ClientID  int64
	Total     decimal.Decimal
	Items     []domain.SaleItem
	CreatedAt time.Time
	// AlreadyExisted is true when the Idempotency-Key matched an existing sale.
	AlreadyExisted bool
}

// SaleService defines the sale use-cases. CreateSale is the core operation:
// it validates every requested line against current stock before any write,
// then commits the sale, the stock decrements, and the ledger credit as one
// all-or-nothing unit.
type SaleService interface {
	CreateSale(ctx context.Context, input CreateSaleInput) (*SaleResult, error)
	GetSale(ctx context.Context, id int64) (*domain.Sale, error)
	ListSales(ctx context.Context, filter ListSalesFilter) ([]*domain.Sale, error)
}
