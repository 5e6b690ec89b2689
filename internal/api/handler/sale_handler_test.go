package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/backoffice-labs/sales-api/internal/api/middleware"
	"github.com/backoffice-labs/sales-api/internal/core/domain"
	"github.com/backoffice-labs/sales-api/internal/core/ports"
)

type stubSaleService struct {
	createFn func(ctx context.Context, input ports.CreateSaleInput) (*ports.SaleResult, error)
	getFn    func(ctx context.Context, id int64) (*domain.Sale, error)
	listFn   func(ctx context.Context, filter ports.ListSalesFilter) ([]*domain.Sale, error)
}

func (s *stubSaleService) CreateSale(ctx context.Context, input ports.CreateSaleInput) (*ports.SaleResult, error) {
	return s.createFn(ctx, input)
}

func (s *stubSaleService) GetSale(ctx context.Context, id int64) (*domain.Sale, error) {
	return s.getFn(ctx, id)
}

func (s *stubSaleService) ListSales(ctx context.Context, filter ports.ListSalesFilter) ([]*domain.Sale, error) {
	return s.listFn(ctx, filter)
}

// newTestContext builds an echo context with the project validator and, when
// identity is non-nil, the claims the Auth middleware would have injected.
func newTestContext(method, target, body string, identity *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(middleware.IdentityKey, *identity)
	}
	return c, rec
}

func operatorIdentity() *domain.Identity {
	return &domain.Identity{UserID: 2, Email: "op@example.com", Role: domain.RoleOperator}
}

func adminIdentity() *domain.Identity {
	return &domain.Identity{UserID: 1, Email: "admin@example.com", Role: domain.RoleAdmin}
}

func TestSaleHandler_Create_Success(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	stub := &stubSaleService{
		createFn: func(_ context.Context, input ports.CreateSaleInput) (*ports.SaleResult, error) {
			if input.ClientID != 3 {
				t.Fatalf("ClientID = %d, want 3", input.ClientID)
			}
			if len(input.Items) != 1 {
				t.Fatalf("items = %d, want 1", len(input.Items))
			}
			line := input.Items[0]
			if line.ProductID != 10 || line.Quantity != 2 || !line.UnitPrice.Equal(decimal.RequireFromString("19.99")) {
				t.Fatalf("unexpected line: %+v", line)
			}
			return &ports.SaleResult{
				ID:       77,
				ClientID: 3,
				Total:    decimal.RequireFromString("39.98"),
				Items: []domain.SaleItem{
					{ID: 1, SaleID: 77, ProductID: 10, Quantity: 2, UnitPrice: line.UnitPrice},
				},
				CreatedAt: now,
			}, nil
		},
	}
	h := NewSaleHandler(stub)

	body := `{"clientId":3,"items":[{"productId":10,"quantity":2,"price":"19.99"}]}`
	c, rec := newTestContext(http.MethodPost, "/v1/sales", body, operatorIdentity())

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(77) {
		t.Fatalf("id = %v, want 77", resp["id"])
	}
	if resp["clientId"] != float64(3) {
		t.Fatalf("clientId = %v, want 3", resp["clientId"])
	}
	if resp["total"] != "39.98" {
		t.Fatalf("total = %v, want 39.98", resp["total"])
	}
	items, ok := resp["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items missing from response: %v", resp["items"])
	}
	item := items[0].(map[string]any)
	if item["productId"] != float64(10) || item["quantity"] != float64(2) {
		t.Fatalf("unexpected item payload: %+v", item)
	}
}

func TestSaleHandler_Create_ReplayReturns200(t *testing.T) {
	stub := &stubSaleService{
		createFn: func(_ context.Context, input ports.CreateSaleInput) (*ports.SaleResult, error) {
			if input.IdempotencyKey != "req-1" {
				t.Fatalf("IdempotencyKey = %q, want req-1", input.IdempotencyKey)
			}
			return &ports.SaleResult{
				ID:             5,
				ClientID:       3,
				Total:          decimal.RequireFromString("10"),
				CreatedAt:      time.Now(),
				AlreadyExisted: true,
			}, nil
		},
	}
	h := NewSaleHandler(stub)

	body := `{"clientId":3,"items":[{"productId":1,"quantity":1,"price":"10"}]}`
	c, rec := newTestContext(http.MethodPost, "/v1/sales", body, operatorIdentity())
	c.Request().Header.Set("Idempotency-Key", "req-1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for replay, got %d", rec.Code)
	}
}

func TestSaleHandler_Create_Unauthenticated(t *testing.T) {
	h := NewSaleHandler(&stubSaleService{})

	body := `{"clientId":3,"items":[]}`
	c, _ := newTestContext(http.MethodPost, "/v1/sales", body, nil)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}

func TestSaleHandler_Create_ServiceErrorsPassThrough(t *testing.T) {
	// Domain errors must reach the central error handler untouched so the
	// error taxonomy decides the status code in exactly one place.
	for _, want := range []error{
		domain.ErrInsufficientStock,
		domain.ErrProductNotFound,
		domain.ErrClientNotFound,
		domain.ErrEmptyOrder,
	} {
		stub := &stubSaleService{
			createFn: func(_ context.Context, _ ports.CreateSaleInput) (*ports.SaleResult, error) {
				return nil, want
			},
		}
		h := NewSaleHandler(stub)

		body := `{"clientId":3,"items":[{"productId":1,"quantity":1,"price":"1"}]}`
		c, _ := newTestContext(http.MethodPost, "/v1/sales", body, operatorIdentity())

		if err := h.Create(c); !errors.Is(err, want) {
			t.Fatalf("err = %v, want %v", err, want)
		}
	}
}

func TestSaleHandler_Create_MissingClientID(t *testing.T) {
	h := NewSaleHandler(&stubSaleService{})

	body := `{"items":[{"productId":1,"quantity":1,"price":"1"}]}`
	c, _ := newTestContext(http.MethodPost, "/v1/sales", body, operatorIdentity())

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
}

func TestSaleHandler_Get_NotFound(t *testing.T) {
	stub := &stubSaleService{
		getFn: func(_ context.Context, _ int64) (*domain.Sale, error) {
			return nil, domain.ErrSaleNotFound
		},
	}
	h := NewSaleHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/v1/sales/9", "", operatorIdentity())
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := h.Get(c); !errors.Is(err, domain.ErrSaleNotFound) {
		t.Fatalf("err = %v, want ErrSaleNotFound", err)
	}
}

func TestSaleHandler_List_FiltersByClient(t *testing.T) {
	var gotFilter ports.ListSalesFilter
	stub := &stubSaleService{
		listFn: func(_ context.Context, filter ports.ListSalesFilter) ([]*domain.Sale, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	h := NewSaleHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/sales?clientId=4", "", adminIdentity())

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFilter.ClientID != 4 {
		t.Fatalf("filter.ClientID = %d, want 4", gotFilter.ClientID)
	}
}

func TestSaleHandler_List_InvalidClientID(t *testing.T) {
	h := NewSaleHandler(&stubSaleService{})

	c, _ := newTestContext(http.MethodGet, "/v1/sales?clientId=abc", "", adminIdentity())

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
}
