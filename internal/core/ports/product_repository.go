package ports

import (
	"context"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
//
// TryDecrementStock is the concurrency-safety anchor of the sale flow: it
// must decrement stock by qty only when the resulting stock stays
// non-negative, as a single atomic step, and report the outcome. Two
// concurrent sales over the same product can therefore never drive stock
// below zero, whatever the interleaving.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int64) error

	// TryDecrementStock atomically applies stock -= qty when stock >= qty.
	// It returns the remaining stock and ok=true on success, ok=false when
	// availability was insufficient (or the product vanished).
	TryDecrementStock(ctx context.Context, id, qty int64) (remaining int64, ok bool, err error)

	// RestoreStock adds qty back after a failed multi-product commit.
	RestoreStock(ctx context.Context, id, qty int64) error
}
