package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemPayload describes one product entry in a submitted order.
type LineItemPayload struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Quantity int             `json:"quantity"`
}

// SubmitOrderRequest describes the order submission payload.
type SubmitOrderRequest struct {
	Name     string            `json:"name"`
	Mobile   string            `json:"mobile"`
	Amount   decimal.Decimal   `json:"amount"`
	Products []LineItemPayload `json:"products"`
}

// OrderResponse represents an order returned to API clients.
type OrderResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Mobile          string            `json:"mobile"`
	Amount          decimal.Decimal   `json:"amount"`
	Products        []LineItemPayload `json:"products"`
	Status          string            `json:"status"`
	ProviderOrderID string            `json:"providerOrderId,omitempty"`
	Date            time.Time         `json:"date"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// SubmitOrderResponse wraps the created order with a confirmation message.
type SubmitOrderResponse struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}

// UpdateStatusRequest describes the status transition payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// MessageResponse is the generic {message} envelope used for
// confirmations and errors.
type MessageResponse struct {
	Message string `json:"message"`
}
