package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind classifies a financial entry.
type EntryKind string

const (
	EntryCredit EntryKind = "credit"
	EntryDebit  EntryKind = "debit"
)

var ErrInvalidEntryKind = errors.New("entry kind must be credit or debit")
var ErrInvalidAmount = errors.New("amount must be positive")

// FinancialEntry is an immutable ledger record. Entries are append-only:
// every committed sale posts exactly one credit entry whose amount equals the
// sale total and whose description references the sale.
type FinancialEntry struct {
	ID          int64           `json:"id"`
	Kind        EntryKind       `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Validate checks the entry invariants before it is appended.
func (e *FinancialEntry) Validate() error {
	if e.Kind != EntryCredit && e.Kind != EntryDebit {
		return ErrInvalidEntryKind
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
