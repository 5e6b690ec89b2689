package ports

import (
	"context"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
// Duplicate emails surface as domain.ErrClientExists.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
}
