package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/backoffice-labs/sales-api/internal/api/metrics"
	"github.com/backoffice-labs/sales-api/internal/core/domain"
	"github.com/backoffice-labs/sales-api/pkg/token"
)

// IdentityKey is the echo context key the verified identity is stored under.
const IdentityKey = "identity"

// Auth verifies the bearer token and injects the resulting domain.Identity
// into the request context. It only authenticates; role checks happen
// explicitly inside each handler via domain.Authorize.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthenticated(c, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthenticated(c, "invalid authorization header")
			}

			claims, err := token.Parse(jwtSecret, strings.TrimSpace(parts[1]))
			if err != nil {
				return unauthenticated(c, "invalid or expired token")
			}

			c.Set(IdentityKey, domain.Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
				Role:   claims.Role,
			})

			return next(c)
		}
	}
}

func unauthenticated(_ echo.Context, msg string) error {
	metrics.AuthDeniedTotal.WithLabelValues("unauthenticated").Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}
