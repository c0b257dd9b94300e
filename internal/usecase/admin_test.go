package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/zestcart/zestcart/internal/domain/errors"
	"github.com/zestcart/zestcart/internal/domain/model"
	pkgAuth "github.com/zestcart/zestcart/internal/pkg/auth"
	testhelpers "github.com/zestcart/zestcart/internal/test"
	"github.com/zestcart/zestcart/internal/usecase"
	"golang.org/x/crypto/bcrypt"
)

func newAdminUseCase(repo *testhelpers.AdminRepositoryStub) *usecase.AdminUseCase {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	hasher := pkgAuth.NewBcryptHasher(bcrypt.MinCost)
	strategy := pkgAuth.NewHMACStrategy("secret", pkgAuth.Options{})
	return usecase.NewAdminUseCase(repo, hasher, strategy, logger)
}

func TestAdminBootstrapIdempotent(t *testing.T) {
	repo := testhelpers.NewAdminRepositoryStub()
	uc := newAdminUseCase(repo)

	if err := uc.Bootstrap(context.Background(), "Admin", "s3cret"); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if err := uc.Bootstrap(context.Background(), "Admin", "s3cret"); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	if len(repo.Admins) != 1 {
		t.Fatalf("expected exactly one admin record, got %d", len(repo.Admins))
	}
	if repo.Admins["Admin"].PasswordHash == "s3cret" {
		t.Fatal("password must not be stored in plaintext")
	}
}

func TestAdminBootstrapRejectsEmptyValues(t *testing.T) {
	uc := newAdminUseCase(testhelpers.NewAdminRepositoryStub())

	if err := uc.Bootstrap(context.Background(), " ", "pass"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := uc.Bootstrap(context.Background(), "Admin", ""); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAdminBootstrapRepositoryError(t *testing.T) {
	repo := testhelpers.NewAdminRepositoryStub()
	repo.CreateFn = func(context.Context, string, string) (bool, error) {
		return false, errors.New("db down")
	}
	uc := newAdminUseCase(repo)

	if err := uc.Bootstrap(context.Background(), "Admin", "s3cret"); err == nil {
		t.Fatal("expected bootstrap error")
	}
}

func TestAdminValidate(t *testing.T) {
	repo := testhelpers.NewAdminRepositoryStub()
	uc := newAdminUseCase(repo)

	if err := uc.Bootstrap(context.Background(), "Admin", "s3cret"); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	ok, token := uc.Validate(context.Background(), "Admin", "s3cret")
	if !ok {
		t.Fatal("expected valid credentials")
	}
	if token == "" {
		t.Fatal("expected operator token")
	}
	adminID, err := uc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if adminID != "Admin" {
		t.Fatalf("unexpected admin id: %s", adminID)
	}

	if ok, _ := uc.Validate(context.Background(), "Admin", "wrong"); ok {
		t.Fatal("expected invalid password to be rejected")
	}
	if ok, _ := uc.Validate(context.Background(), "ghost", "s3cret"); ok {
		t.Fatal("expected unknown admin to be rejected")
	}
	if ok, _ := uc.Validate(context.Background(), "", ""); ok {
		t.Fatal("expected empty credentials to be rejected")
	}
}

func TestAdminValidateEmptyStore(t *testing.T) {
	uc := newAdminUseCase(testhelpers.NewAdminRepositoryStub())

	if ok, _ := uc.Validate(context.Background(), "Admin", "s3cret"); ok {
		t.Fatal("expected false on empty store")
	}
}

func TestAdminValidateRepositoryErrorYieldsFalse(t *testing.T) {
	repo := testhelpers.NewAdminRepositoryStub()
	repo.GetFn = func(context.Context, string) (*model.AdminCredential, error) {
		return nil, errors.New("db down")
	}
	uc := newAdminUseCase(repo)

	if ok, _ := uc.Validate(context.Background(), "Admin", "s3cret"); ok {
		t.Fatal("expected false on repository error")
	}
}

func TestAdminParseTokenEmpty(t *testing.T) {
	uc := newAdminUseCase(testhelpers.NewAdminRepositoryStub())
	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
