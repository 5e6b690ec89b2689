package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParse(t *testing.T) {
	signed, err := Generate("secret", 42, "ana@example.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := Parse("secret", signed)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "ana@example.com" {
		t.Fatalf("Email = %q", claims.Email)
	}
	if claims.Role != "admin" {
		t.Fatalf("Role = %q, want admin", claims.Role)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Fatalf("unexpected expiry: %v", claims.ExpiresAt)
	}
}

func TestGenerate_EmptySecret(t *testing.T) {
	if _, err := Generate("", 1, "a@example.com", "admin", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	signed, err := Generate("secret", 1, "a@example.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := Parse("other", signed); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParse_RejectsNonHMACAlgorithm(t *testing.T) {
	// alg=none tokens must never verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": 1})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := Parse("secret", raw); err == nil {
		t.Fatalf("alg=none token accepted")
	}
}
