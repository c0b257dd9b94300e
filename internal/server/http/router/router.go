package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/zestcart/zestcart/internal/server/http/handlers"
	"github.com/zestcart/zestcart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CommerceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade, logger)
	paymentHandler := handlers.NewPaymentHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	engine.POST("/submitOrder", orderHandler.Submit)
	engine.GET("/getOrders", orderHandler.List)
	engine.POST("/pay", paymentHandler.Pay)
	engine.POST("/validate-admin", adminHandler.Validate)

	operator := engine.Group("")
	operator.Use(middleware.OperatorRequired(facade))
	operator.POST("/updateOrderStatus/:orderId", orderHandler.UpdateStatus)

	return engine
}
