package usecase

import (
	"go.uber.org/fx"

	"github.com/zestcart/zestcart/internal/config"
	"github.com/zestcart/zestcart/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewOrderUseCase,
	NewAdminUseCase,
	newPaymentUseCase,
)

type paymentParams struct {
	fx.In

	Provider PaymentProvider
	Orders   repository.OrderRepository
	Config   *config.Config
}

func newPaymentUseCase(p paymentParams) *PaymentUseCase {
	return NewPaymentUseCase(p.Provider, p.Orders, p.Config.PaymentCurrency)
}
