package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrForbidden = errors.New("access forbidden")

// User models an authenticated actor in the system.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the known role claims.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleOperator
}

// Identity is the verified token subject injected into the request context
// by the auth middleware. It carries only what access decisions need.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

// Authorize grants access when requiredRole is empty (any authenticated
// identity) or the identity carries exactly the required role. Handlers call
// it explicitly at the top of privileged operations; there is no role
// middleware chain to depend on.
func Authorize(id Identity, requiredRole string) error {
	if requiredRole == "" {
		return nil
	}
	if id.Role != requiredRole {
		return ErrForbidden
	}
	return nil
}
