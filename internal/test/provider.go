package test

import (
	"context"

	"github.com/zestcart/zestcart/internal/domain/model"
	"github.com/zestcart/zestcart/internal/usecase"
)

// PaymentProviderStub returns canned provider orders without network access.
type PaymentProviderStub struct {
	CreateOrderFn func(context.Context, usecase.ProviderOrderRequest) (*model.PaymentOrder, error)
	Requests      []usecase.ProviderOrderRequest
}

// CreateOrder records the request and delegates or echoes it back.
func (s *PaymentProviderStub) CreateOrder(ctx context.Context, req usecase.ProviderOrderRequest) (*model.PaymentOrder, error) {
	s.Requests = append(s.Requests, req)
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, req)
	}
	return &model.PaymentOrder{
		ProviderOrderID:  "order_stub",
		AmountMinorUnits: req.AmountMinorUnits,
		Currency:         req.Currency,
		Receipt:          req.Receipt,
	}, nil
}
