package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus describes the delivery lifecycle of an order.
type OrderStatus string

const (
	OrderStatusUndelivered OrderStatus = "Undelivered"
	OrderStatusDelivered   OrderStatus = "Delivered"
)

// LineItem is an immutable snapshot of one purchased product,
// captured at submission time and independent of later catalog edits.
type LineItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Quantity int             `json:"quantity"`
}

// Order describes one checkout transaction.
type Order struct {
	ID              uuid.UUID
	Name            string
	Mobile          string
	TotalAmount     decimal.Decimal
	Products        []LineItem
	Status          OrderStatus
	Receipt         uuid.UUID
	ProviderOrderID *string
	Date            time.Time
	UpdatedAt       time.Time
}

// OrderDraft carries client-supplied fields of a submission before
// the system assigns identity, status, and timestamps.
type OrderDraft struct {
	Name        string
	Mobile      string
	TotalAmount decimal.Decimal
	Products    []LineItem
}
