package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/backoffice-labs/sales-api/internal/api/metrics"
	"github.com/backoffice-labs/sales-api/internal/core/domain"
	"github.com/backoffice-labs/sales-api/internal/core/ports"
)

// SaleHandler handles HTTP requests for the sale workflow.
type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// Create handles POST /v1/sales.
//
// @Summary      Commit a multi-line sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createSaleRequest  true   "Sale details"
// @Success      201              {object}  saleResponse
// @Failure      400              {object}  map[string]string
// @Failure      401              {object}  map[string]string
// @Failure      404              {object}  map[string]string
// @Failure      500              {object}  map[string]string
// @Router       /v1/sales [post]
func (h *SaleHandler) Create(c echo.Context) error {
	if _, err := requireRole(c, ""); err != nil {
		return err
	}

	var req createSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SalesRejectedTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateSaleInput{
		ClientID:       req.ClientID,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, ports.SaleLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
		})
	}

	result, err := h.service.CreateSale(c.Request().Context(), input)
	if err != nil {
		metrics.SalesRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
		return err
	}

	if !result.AlreadyExisted {
		metrics.SalesCreatedTotal.Inc()
		metrics.LedgerEntriesTotal.WithLabelValues(string(domain.EntryCredit)).Inc()
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, toSaleResponse(result.ID, result.ClientID, result.Total, result.CreatedAt, result.Items))
}

// Get handles GET /v1/sales/:id.
func (h *SaleHandler) Get(c echo.Context) error {
	if _, err := requireRole(c, ""); err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	sale, err := h.service.GetSale(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSaleResponse(sale.ID, sale.ClientID, sale.Total, sale.CreatedAt, sale.Items))
}

// List handles GET /v1/sales?clientId=.
func (h *SaleHandler) List(c echo.Context) error {
	if _, err := requireRole(c, ""); err != nil {
		return err
	}

	var filter ports.ListSalesFilter
	if raw := c.QueryParam("clientId"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || clientID <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid clientId")
		}
		filter.ClientID = clientID
	}

	sales, err := h.service.ListSales(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	resp := make([]saleResponse, 0, len(sales))
	for _, sale := range sales {
		resp = append(resp, toSaleResponse(sale.ID, sale.ClientID, sale.Total, sale.CreatedAt, sale.Items))
	}
	return c.JSON(http.StatusOK, resp)
}

// rejectReason labels a CreateSale failure for the rejection counter.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, domain.ErrClientNotFound):
		return "client_not_found"
	case errors.Is(err, domain.ErrEmptyOrder):
		return "empty_order"
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrNegativePrice):
		return "invalid"
	default:
		return "internal"
	}
}
