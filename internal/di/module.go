package di

import (
	"github.com/zestcart/zestcart/internal/adapter/razorpay"
	"github.com/zestcart/zestcart/internal/app"
	"github.com/zestcart/zestcart/internal/config"
	"github.com/zestcart/zestcart/internal/logger"
	"github.com/zestcart/zestcart/internal/pkg/auth"
	"github.com/zestcart/zestcart/internal/server/http/handlers"
	"github.com/zestcart/zestcart/internal/server/http/router"
	"github.com/zestcart/zestcart/internal/storage/postgres"
	"github.com/zestcart/zestcart/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		razorpay.Module,
		usecase.Module,
		fx.Provide(func(client razorpay.Client) usecase.PaymentProvider { return client }),
		fx.Provide(func(facade *app.CommerceFacade) handlers.CommerceFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
