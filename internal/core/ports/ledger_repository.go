package ports

import (
	"context"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

// LedgerRepository is the append-only store of financial entries.
// Append assigns the entry identifier. There is no update or delete:
// ledger entries are immutable once written.
type LedgerRepository interface {
	Append(ctx context.Context, e *domain.FinancialEntry) error
	List(ctx context.Context, kind domain.EntryKind) ([]*domain.FinancialEntry, error)
}
