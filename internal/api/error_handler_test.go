package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrClientNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrSaleNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrClientExists, http.StatusConflict},
		{domain.ErrInsufficientStock, http.StatusBadRequest},
		{domain.ErrEmptyOrder, http.StatusBadRequest},
		{domain.ErrInvalidQuantity, http.StatusBadRequest},
		{domain.ErrNegativePrice, http.StatusBadRequest},
		{domain.ErrInvalidEntryKind, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec, body := render(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: status = %d, want %d", tc.err, rec.Code, tc.code)
		}
		if body["error"] == "" {
			t.Fatalf("%v: empty error message", tc.err)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("decrement stock for product 3"), domain.ErrInsufficientStock)

	rec, _ := render(t, wrapped)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestErrorHandler_UnknownErrorHidesDetails(t *testing.T) {
	rec, body := render(t, errors.New("connection reset by peer"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body["error"])
	}
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body["error"] != "invalid payload" {
		t.Fatalf("message = %q", body["error"])
	}
}
