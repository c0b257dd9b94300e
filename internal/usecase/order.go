package usecase

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/zestcart/zestcart/internal/domain/errors"
	"github.com/zestcart/zestcart/internal/domain/model"
	"github.com/zestcart/zestcart/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Submit validates a draft, assigns identity and initial status, and persists it.
func (u *OrderUseCase) Submit(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:          uuid.New(),
		Name:        draft.Name,
		Mobile:      draft.Mobile,
		TotalAmount: draft.TotalAmount,
		Products:    draft.Products,
		Status:      model.OrderStatusUndelivered,
		Receipt:     uuid.New(),
	}

	return u.orders.Create(ctx, order)
}

// List returns all stored orders, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// AdvanceStatus performs the only permitted transition, Undelivered to
// Delivered, exactly once. Any other requested status is rejected
// without touching the store.
func (u *OrderUseCase) AdvanceStatus(ctx context.Context, id uuid.UUID, requested model.OrderStatus) (*model.Order, error) {
	if requested != model.OrderStatusDelivered {
		return nil, domainErrors.ErrInvalidStatusTransition
	}
	return u.orders.MarkDelivered(ctx, id)
}
