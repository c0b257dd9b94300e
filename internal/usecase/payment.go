package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zestcart/zestcart/internal/domain/model"
	"github.com/zestcart/zestcart/internal/domain/repository"
	"github.com/zestcart/zestcart/internal/pkg/money"
)

// ProviderOrderRequest is the provider-facing shape of a payment order.
type ProviderOrderRequest struct {
	AmountMinorUnits int64
	Currency         string
	Receipt          string
}

// PaymentProvider creates remote payment orders at the gateway.
type PaymentProvider interface {
	CreateOrder(ctx context.Context, req ProviderOrderRequest) (*model.PaymentOrder, error)
}

// PaymentUseCase converts domain amounts into provider payment orders.
type PaymentUseCase struct {
	provider PaymentProvider
	orders   repository.OrderRepository
	currency string
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(provider PaymentProvider, orders repository.OrderRepository, currency string) *PaymentUseCase {
	return &PaymentUseCase{provider: provider, orders: orders, currency: currency}
}

// CreatePaymentOrder validates the amount, converts it to minor units
// and requests a provider order. When orderID is supplied the provider
// order is created with the domain order's receipt and the returned
// provider id is persisted against the order. Exactly one remote order
// is created per successful call; there are no automatic retries.
func (u *PaymentUseCase) CreatePaymentOrder(ctx context.Context, amount decimal.Decimal, orderID *uuid.UUID) (*model.PaymentOrder, error) {
	if err := money.ValidatePositive(amount); err != nil {
		return nil, err
	}

	req := ProviderOrderRequest{
		AmountMinorUnits: money.MinorUnits(amount),
		Currency:         u.currency,
	}

	var linked *model.Order
	if orderID != nil {
		order, err := u.orders.GetByID(ctx, *orderID)
		if err != nil {
			return nil, err
		}
		linked = order
		req.Receipt = order.Receipt.String()
	} else {
		req.Receipt = uuid.NewString()
	}

	payment, err := u.provider.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	if linked != nil {
		if err := u.orders.AttachPaymentOrder(ctx, linked.ID, payment.ProviderOrderID); err != nil {
			return nil, err
		}
	}

	return payment, nil
}
