package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/backoffice-labs/sales-api/internal/api/metrics"
	"github.com/backoffice-labs/sales-api/internal/api/middleware"
	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// absence means the middleware did not run for this route; reject with 401
// rather than proceed unauthenticated.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || id.Role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// requireRole authenticates and then authorizes in one step. Every handler
// for a privileged operation calls it first; requiredRole "" admits any
// authenticated identity.
func requireRole(c echo.Context, requiredRole string) (domain.Identity, error) {
	id, err := ctxIdentity(c)
	if err != nil {
		return domain.Identity{}, err
	}
	if err := domain.Authorize(id, requiredRole); err != nil {
		metrics.AuthDeniedTotal.WithLabelValues("forbidden").Inc()
		return domain.Identity{}, err
	}
	return id, nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
