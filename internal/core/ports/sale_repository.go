package ports

import (
	"context"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

// ListSalesFilter carries the query parameters for listing sales.
type ListSalesFilter struct {
	ClientID int64 // 0 = all clients
}

// SaleRepository defines persistence operations for sales. A sale and its
// items are written and deleted as one unit; items never exist on their own.
// Create assigns the sale and item identifiers.
type SaleRepository interface {
	Create(ctx context.Context, s *domain.Sale) error
	FindByID(ctx context.Context, id int64) (*domain.Sale, error)
	List(ctx context.Context, filter ListSalesFilter) ([]*domain.Sale, error)
	// Delete removes a sale and its items. Used only to unwind a commit whose
	// ledger posting failed.
	Delete(ctx context.Context, id int64) error
}
