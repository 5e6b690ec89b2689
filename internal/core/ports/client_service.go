package ports

import (
	"context"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

// ClientInput carries the client fields for create and update.
type ClientInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// ClientService defines client record management use-cases.
type ClientService interface {
	Create(ctx context.Context, input ClientInput) (*domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id int64, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}
