package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
	"github.com/backoffice-labs/sales-api/internal/core/ports"
)

// FinanceService implements the financial record use-cases over the
// append-only ledger.
type FinanceService struct {
	ledger ports.LedgerRepository
	logger zerolog.Logger
}

func NewFinanceService(ledger ports.LedgerRepository, logger zerolog.Logger) *FinanceService {
	return &FinanceService{ledger: ledger, logger: logger}
}

// Record appends a manual entry. Sale credits never come through here; the
// sale processor posts those itself as part of the sale commit.
func (s *FinanceService) Record(ctx context.Context, input ports.EntryInput) (*domain.FinancialEntry, error) {
	entry := &domain.FinancialEntry{
		Kind:        domain.EntryKind(input.Kind),
		Amount:      input.Amount,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := s.ledger.Append(ctx, entry); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("entry_id", entry.ID).Str("kind", string(entry.Kind)).Str("amount", entry.Amount.String()).Msg("ledger entry recorded")
	return entry, nil
}

func (s *FinanceService) List(ctx context.Context, kind domain.EntryKind) ([]*domain.FinancialEntry, error) {
	if kind != "" && kind != domain.EntryCredit && kind != domain.EntryDebit {
		return nil, domain.ErrInvalidEntryKind
	}
	return s.ledger.List(ctx, kind)
}
