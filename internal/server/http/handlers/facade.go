package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zestcart/zestcart/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	DeliverOrder(ctx context.Context, id uuid.UUID, requested model.OrderStatus) (*model.Order, error)
}

// PaymentFacade provides payment order creation.
type PaymentFacade interface {
	CreatePaymentOrder(ctx context.Context, amount decimal.Decimal, orderID *uuid.UUID) (*model.PaymentOrder, error)
}

// AdminFacade describes operator credential capabilities required by handlers.
type AdminFacade interface {
	ValidateAdmin(ctx context.Context, adminID, password string) (bool, string)
	ParseOperatorToken(token string) (string, error)
}

// CommerceFacade aggregates the full set of operations used across handlers.
type CommerceFacade interface {
	OrderFacade
	PaymentFacade
	AdminFacade
}
