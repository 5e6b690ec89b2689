package ports

import (
	"context"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
// Create assigns the identifier. Duplicate emails surface as
// domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
}
