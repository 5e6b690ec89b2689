package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

// ProductInput carries the product fields for create and update.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
}

// ProductService defines product record management use-cases. Stock mutation
// through Update and through the sale flow share the same repository, so the
// two paths cannot race destructively.
type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id int64, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
