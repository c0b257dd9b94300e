package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/zestcart/zestcart/internal/domain/errors"
	"github.com/zestcart/zestcart/internal/domain/model"
	"github.com/zestcart/zestcart/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
	logger *slog.Logger
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{facade: facade, logger: logger}
}

// Submit handles POST /submitOrder.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req dto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	draft := model.OrderDraft{
		Name:        req.Name,
		Mobile:      req.Mobile,
		TotalAmount: req.Amount,
		Products:    make([]model.LineItem, 0, len(req.Products)),
	}
	for _, p := range req.Products {
		draft.Products = append(draft.Products, model.LineItem{
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Quantity: p.Quantity,
		})
	}

	order, err := h.facade.SubmitOrder(c.Request.Context(), draft)
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to submit order"})
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitOrderResponse{
		Message: "Order submitted successfully",
		Order:   toOrderResponse(*order),
	})
}

// List handles GET /getOrders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to fetch orders"})
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles POST /updateOrderStatus/:orderId.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid order id"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	_, err = h.facade.DeliverOrder(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatusTransition):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "unsupported status transition"})
		case errors.Is(err, domainErrors.ErrAlreadyDelivered):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "order is already delivered"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "order not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to update order status"})
		}
		return
	}

	h.logger.Info("order delivered",
		slog.String("order_id", id.String()),
		slog.String("admin_id", CurrentAdminID(c)),
	)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Order status updated successfully"})
}
