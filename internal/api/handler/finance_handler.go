package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/backoffice-labs/sales-api/internal/api/metrics"
	"github.com/backoffice-labs/sales-api/internal/core/domain"
	"github.com/backoffice-labs/sales-api/internal/core/ports"
)

// FinanceHandler exposes the financial ledger. Both routes are admin-only;
// an operator identity is rejected with 403 before any service call.
type FinanceHandler struct {
	service ports.FinanceService
}

func NewFinanceHandler(service ports.FinanceService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

type entryRequest struct {
	Kind        string          `json:"kind" validate:"required,oneof=credit debit"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required"`
}

// List handles GET /v1/finance/entries?kind=.
//
// @Summary      List financial ledger entries
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Param        kind  query     string  false  "Filter by entry kind (credit|debit)"
// @Success      200   {array}   domain.FinancialEntry
// @Failure      403   {object}  map[string]string
// @Router       /v1/finance/entries [get]
func (h *FinanceHandler) List(c echo.Context) error {
	if _, err := requireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), domain.EntryKind(c.QueryParam("kind")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Record handles POST /v1/finance/entries for manual ledger entries. Sale
// credits are posted by the sale processor, never through this route.
func (h *FinanceHandler) Record(c echo.Context) error {
	if _, err := requireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Record(c.Request().Context(), ports.EntryInput{
		Kind:        req.Kind,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.LedgerEntriesTotal.WithLabelValues(string(entry.Kind)).Inc()
	return c.JSON(http.StatusCreated, entry)
}
