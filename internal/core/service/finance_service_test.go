package service

import (
	"context"
	"errors"
	"testing"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
	"github.com/backoffice-labs/sales-api/internal/core/ports"
)

func TestFinanceRecord_AppendsValidEntry(t *testing.T) {
	ledger := &stubLedgerRepo{}
	svc := NewFinanceService(ledger, discardLogger)

	entry, err := svc.Record(context.Background(), ports.EntryInput{
		Kind:        "debit",
		Amount:      price("120.50"),
		Description: "office rent",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if entry.ID == 0 {
		t.Fatalf("entry id not assigned")
	}
	if entry.Kind != domain.EntryDebit {
		t.Fatalf("kind = %s, want debit", entry.Kind)
	}
	if ledger.count() != 1 {
		t.Fatalf("ledger entries = %d, want 1", ledger.count())
	}
}

func TestFinanceRecord_RejectsUnknownKind(t *testing.T) {
	svc := NewFinanceService(&stubLedgerRepo{}, discardLogger)

	_, err := svc.Record(context.Background(), ports.EntryInput{
		Kind:        "transfer",
		Amount:      price("10"),
		Description: "x",
	})
	if !errors.Is(err, domain.ErrInvalidEntryKind) {
		t.Fatalf("err = %v, want ErrInvalidEntryKind", err)
	}
}

func TestFinanceRecord_RejectsNonPositiveAmount(t *testing.T) {
	svc := NewFinanceService(&stubLedgerRepo{}, discardLogger)

	for _, amount := range []string{"0", "-5.00"} {
		_, err := svc.Record(context.Background(), ports.EntryInput{
			Kind:        "credit",
			Amount:      price(amount),
			Description: "x",
		})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("amount %s: err = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestFinanceList_RejectsUnknownKindFilter(t *testing.T) {
	svc := NewFinanceService(&stubLedgerRepo{}, discardLogger)

	_, err := svc.List(context.Background(), domain.EntryKind("transfer"))
	if !errors.Is(err, domain.ErrInvalidEntryKind) {
		t.Fatalf("err = %v, want ErrInvalidEntryKind", err)
	}
}

func TestProductCreate_RejectsNegativeValues(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)

	_, err := svc.Create(context.Background(), ports.ProductInput{Name: "x", Price: price("-1")})
	if !errors.Is(err, domain.ErrNegativePrice) {
		t.Fatalf("err = %v, want ErrNegativePrice", err)
	}

	_, err = svc.Create(context.Background(), ports.ProductInput{Name: "x", Price: price("1"), Stock: -2})
	if !errors.Is(err, domain.ErrNegativeStock) {
		t.Fatalf("err = %v, want ErrNegativeStock", err)
	}
}
