package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zestcart/zestcart/internal/adapter/razorpay"
	domainErrors "github.com/zestcart/zestcart/internal/domain/errors"
	"github.com/zestcart/zestcart/internal/server/http/dto"
)

// PaymentHandler manages payment order creation.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Pay handles POST /pay.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	var orderID *uuid.UUID
	if req.OrderID != "" {
		parsed, err := uuid.Parse(req.OrderID)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid order id"})
			return
		}
		orderID = &parsed
	}

	payment, err := h.facade.CreatePaymentOrder(c.Request.Context(), req.Amount, orderID)
	if err != nil {
		var gatewayErr *razorpay.GatewayError
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "amount must be a positive number"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "order not found"})
		case errors.As(err, &gatewayErr):
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: gatewayErr.Message})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to create payment order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PayResponse{
		OrderID:  payment.ProviderOrderID,
		Amount:   payment.AmountMinorUnits,
		Currency: payment.Currency,
		Receipt:  payment.Receipt,
	})
}
