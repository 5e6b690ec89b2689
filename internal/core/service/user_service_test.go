package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
	"github.com/backoffice-labs/sales-api/internal/core/ports"
)

func TestUserCreate_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "plaintext-pass",
		Role:     domain.RoleOperator,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("id not assigned")
	}
	if user.PasswordHash == "plaintext-pass" {
		t.Fatalf("password stored in the clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("plaintext-pass")) != nil {
		t.Fatalf("stored hash does not match the password")
	}
}

func TestUserCreate_InvalidRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), discardLogger)

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "pass",
		Role:     "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	input := ports.CreateUserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "pass-eight",
		Role:     domain.RoleAdmin,
	}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(context.Background(), input)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestUserUpdate_PartialFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "original-pass",
		Role:     domain.RoleOperator,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("role = %q, want admin", updated.Role)
	}
	if updated.Name != "Ana" || updated.Email != "ana@example.com" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.PasswordHash != created.PasswordHash {
		t.Fatalf("password hash changed without a new password")
	}
}

func TestUserUpdate_RehashesNewPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "original-pass",
		Role:     domain.RoleOperator,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Password: "rotated-pass",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("rotated-pass")) != nil {
		t.Fatalf("new password does not verify")
	}
}

func TestUserUpdate_UnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), discardLogger)

	_, err := svc.Update(context.Background(), 42, ports.UpdateUserInput{Name: "X"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUserDelete_UnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), discardLogger)

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
