package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/zestcart/zestcart/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	// MarkDelivered atomically transitions the order from Undelivered to
	// Delivered. It fails with ErrNotFound for an unknown id and with
	// ErrAlreadyDelivered when the transition has already happened.
	MarkDelivered(ctx context.Context, id uuid.UUID) (*model.Order, error)
	AttachPaymentOrder(ctx context.Context, id uuid.UUID, providerOrderID string) error
}
