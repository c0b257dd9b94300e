package dto

import "github.com/shopspring/decimal"

// PayRequest describes the payment order creation payload. OrderID is
// optional; when present the provider order is linked to that order.
type PayRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	OrderID string          `json:"orderId,omitempty"`
}

// PayResponse mirrors the provider order handed back to the client
// for checkout.
type PayResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}
