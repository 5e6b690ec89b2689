package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

// EntryInput carries the fields for a manual ledger entry.
type EntryInput struct {
	Kind        string
	Amount      decimal.Decimal
	Description string
}

// FinanceService defines the financial record use-cases. The ledger is
// append-only; both operations are admin-only at the handler layer.
type FinanceService interface {
	Record(ctx context.Context, input EntryInput) (*domain.FinancialEntry, error)
	// List returns entries, optionally filtered by kind ("" = all).
	List(ctx context.Context, kind domain.EntryKind) ([]*domain.FinancialEntry, error)
}
