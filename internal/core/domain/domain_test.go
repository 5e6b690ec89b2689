package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAuthorize(t *testing.T) {
	admin := Identity{UserID: 1, Role: RoleAdmin}
	operator := Identity{UserID: 2, Role: RoleOperator}

	if err := Authorize(operator, ""); err != nil {
		t.Fatalf("any-authenticated should admit operator: %v", err)
	}
	if err := Authorize(admin, RoleAdmin); err != nil {
		t.Fatalf("admin should access admin routes: %v", err)
	}
	if err := Authorize(operator, RoleAdmin); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestSaleItemSubtotal(t *testing.T) {
	item := SaleItem{Quantity: 3, UnitPrice: decimal.RequireFromString("0.10")}
	if got := item.Subtotal().String(); got != "0.3" {
		t.Fatalf("subtotal = %q, want 0.3", got)
	}
}

func TestFinancialEntryValidate(t *testing.T) {
	valid := FinancialEntry{Kind: EntryCredit, Amount: decimal.NewFromInt(10)}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}

	badKind := FinancialEntry{Kind: "transfer", Amount: decimal.NewFromInt(10)}
	if err := badKind.Validate(); !errors.Is(err, ErrInvalidEntryKind) {
		t.Fatalf("err = %v, want ErrInvalidEntryKind", err)
	}

	zeroAmount := FinancialEntry{Kind: EntryDebit, Amount: decimal.Zero}
	if err := zeroAmount.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
}
