package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainErrors "github.com/zestcart/zestcart/internal/domain/errors"
	"github.com/zestcart/zestcart/internal/domain/repository"
	pkgAuth "github.com/zestcart/zestcart/internal/pkg/auth"
)

// AdminUseCase bootstraps and validates the single operator credential.
type AdminUseCase struct {
	admins repository.AdminRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	logger *slog.Logger
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(admins repository.AdminRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, logger *slog.Logger) *AdminUseCase {
	return &AdminUseCase{admins: admins, hasher: hasher, tokens: strategy, logger: logger}
}

// Bootstrap seeds the canonical admin record once. Calling it again is
// a no-op; the stored password is only ever a bcrypt hash.
func (u *AdminUseCase) Bootstrap(ctx context.Context, adminID, password string) error {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" || password == "" {
		return domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return err
	}

	created, err := u.admins.Create(ctx, adminID, hash)
	if err != nil {
		return err
	}

	if created {
		u.logger.Info("admin credentials seeded", slog.String("adminId", adminID))
	} else {
		u.logger.Info("admin credentials already exist", slog.String("adminId", adminID))
	}
	return nil
}

// Validate reports whether the supplied credentials match the stored
// record. Any mismatch, missing record, or internal failure yields
// false; a match additionally yields a signed operator token.
func (u *AdminUseCase) Validate(ctx context.Context, adminID, password string) (bool, string) {
	if adminID == "" || password == "" {
		return false, ""
	}

	admin, err := u.admins.GetByAdminID(ctx, adminID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Error("admin lookup failed", slog.String("error", err.Error()))
		}
		return false, ""
	}

	if err := u.hasher.Compare(admin.PasswordHash, password); err != nil {
		return false, ""
	}

	token, err := u.tokens.IssueToken(admin.AdminID)
	if err != nil {
		u.logger.Error("operator token issue failed", slog.String("error", err.Error()))
		return false, ""
	}
	return true, token
}

// ParseToken extracts the admin identity from an operator token.
func (u *AdminUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
