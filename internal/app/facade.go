package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zestcart/zestcart/internal/domain/model"
	"github.com/zestcart/zestcart/internal/usecase"
)

// CommerceFacade aggregates the use cases behind one surface consumed
// by the HTTP layer and the startup bootstrap.
type CommerceFacade struct {
	orders   *usecase.OrderUseCase
	payments *usecase.PaymentUseCase
	admin    *usecase.AdminUseCase
}

func NewCommerceFacade(orders *usecase.OrderUseCase, payments *usecase.PaymentUseCase, admin *usecase.AdminUseCase) *CommerceFacade {
	return &CommerceFacade{orders: orders, payments: payments, admin: admin}
}

func (f *CommerceFacade) SubmitOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	return f.orders.Submit(ctx, draft)
}

func (f *CommerceFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *CommerceFacade) DeliverOrder(ctx context.Context, id uuid.UUID, requested model.OrderStatus) (*model.Order, error) {
	return f.orders.AdvanceStatus(ctx, id, requested)
}

func (f *CommerceFacade) CreatePaymentOrder(ctx context.Context, amount decimal.Decimal, orderID *uuid.UUID) (*model.PaymentOrder, error) {
	return f.payments.CreatePaymentOrder(ctx, amount, orderID)
}

func (f *CommerceFacade) ValidateAdmin(ctx context.Context, adminID, password string) (bool, string) {
	return f.admin.Validate(ctx, adminID, password)
}

func (f *CommerceFacade) ParseOperatorToken(token string) (string, error) {
	return f.admin.ParseToken(token)
}

func (f *CommerceFacade) BootstrapAdmin(ctx context.Context, adminID, password string) error {
	return f.admin.Bootstrap(ctx, adminID, password)
}
