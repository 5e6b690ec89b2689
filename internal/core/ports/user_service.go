package ports

import (
	"context"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

// CreateUserInput carries the fields for creating a user. Password arrives in
// the clear and is hashed by the service before it reaches any repository.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries the mutable user fields. Empty fields are left
// unchanged; a non-empty Password is re-hashed.
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserService defines user management use-cases. All of them are privileged:
// handlers authorize the admin role before calling in.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
