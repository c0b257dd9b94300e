package repository

import (
	"context"

	"github.com/zestcart/zestcart/internal/domain/model"
)

// AdminRepository describes persistence operations for the operator credential.
type AdminRepository interface {
	// Create inserts the credential unless one with the same adminID
	// already exists. Reports whether a new record was written.
	Create(ctx context.Context, adminID, passwordHash string) (bool, error)
	GetByAdminID(ctx context.Context, adminID string) (*model.AdminCredential, error)
}
