// Package token issues and verifies the HS256 identity tokens used by the
// auth gate. Claims carry the user id, email, and role so access decisions
// never need a database round trip.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token validity window when none is configured.
const DefaultTTL = 8 * time.Hour

// Claims are the registered JWT claims plus the application's own fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"` // "admin" | "operator"
}

// Generate returns a signed token for the given identity, valid for ttl
// (DefaultTTL when ttl <= 0).
func Generate(secret string, userID int64, email, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: empty signing secret")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse validates the token signature and expiry and returns the claims.
func Parse(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
