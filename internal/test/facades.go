package test

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zestcart/zestcart/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	SubmitFn  func(context.Context, model.OrderDraft) (*model.Order, error)
	OrdersFn  func(context.Context) ([]model.Order, error)
	DeliverFn func(context.Context, uuid.UUID, model.OrderStatus) (*model.Order, error)
}

// SubmitOrder delegates to provided function or returns a default order.
func (s OrderFacadeStub) SubmitOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, draft)
	}
	return &model.Order{
		ID:          uuid.New(),
		Name:        draft.Name,
		Mobile:      draft.Mobile,
		TotalAmount: draft.TotalAmount,
		Products:    draft.Products,
		Status:      model.OrderStatusUndelivered,
		Receipt:     uuid.New(),
	}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: uuid.New(), Name: "A", Status: model.OrderStatusUndelivered}}, nil
}

// DeliverOrder delegates to provided function or reports success.
func (s OrderFacadeStub) DeliverOrder(ctx context.Context, id uuid.UUID, requested model.OrderStatus) (*model.Order, error) {
	if s.DeliverFn != nil {
		return s.DeliverFn(ctx, id, requested)
	}
	return &model.Order{ID: id, Status: model.OrderStatusDelivered}, nil
}

// PaymentFacadeStub simulates payment order creation.
type PaymentFacadeStub struct {
	CreateFn func(context.Context, decimal.Decimal, *uuid.UUID) (*model.PaymentOrder, error)
}

// CreatePaymentOrder delegates to provided function or returns a default payment order.
func (s PaymentFacadeStub) CreatePaymentOrder(ctx context.Context, amount decimal.Decimal, orderID *uuid.UUID) (*model.PaymentOrder, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, amount, orderID)
	}
	return &model.PaymentOrder{
		ProviderOrderID:  "order_stub",
		AmountMinorUnits: amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		Currency:         "INR",
	}, nil
}

// AdminFacadeStub simulates admin validation and token parsing.
type AdminFacadeStub struct {
	ValidateFn func(context.Context, string, string) (bool, string)
	ParseFn    func(string) (string, error)
}

// ValidateAdmin delegates to provided function or accepts everything.
func (s AdminFacadeStub) ValidateAdmin(ctx context.Context, adminID, password string) (bool, string) {
	if s.ValidateFn != nil {
		return s.ValidateFn(ctx, adminID, password)
	}
	return true, "operator-token"
}

// ParseOperatorToken delegates to provided function or returns a fixed identity.
func (s AdminFacadeStub) ParseOperatorToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "Admin", nil
}

// CommerceFacadeStub aggregates the facade stubs used across handlers.
type CommerceFacadeStub struct {
	OrderFacadeStub
	PaymentFacadeStub
	AdminFacadeStub
}
