package ports

import (
	"context"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

// AuthService issues identity tokens. Verification of presented tokens is the
// auth middleware's job; the service only owns the login side.
type AuthService interface {
	// Login checks the credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
