package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/zestcart/zestcart/internal/domain/model"
	"github.com/zestcart/zestcart/internal/usecase"
)

// GatewayError carries the payment provider's failure message. It is a
// transient failure from the caller's perspective; the adapter never
// retries on its own.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("payment gateway: %s", e.Message)
	}
	return fmt.Sprintf("payment gateway: %s (status %d)", e.Message, e.StatusCode)
}

// Client exposes operations to create payment orders at the provider.
type Client interface {
	CreateOrder(ctx context.Context, req usecase.ProviderOrderRequest) (*model.PaymentOrder, error)
}

// HTTPClient implements Client via the Razorpay Orders API.
type HTTPClient struct {
	baseURL    *url.URL
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

// orderRequest mirrors the JSON payload sent to the provider.
type orderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture int    `json:"payment_capture"`
}

// orderResponse mirrors the JSON payload returned by the provider.
type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// NewHTTPClient creates HTTP provider client with default timeout.
// Credentials arrive from configuration and are never logged.
func NewHTTPClient(baseURL, keyID, keySecret string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse provider url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("provider url must be absolute")
	}
	return &HTTPClient{
		baseURL:   parsed,
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateOrder requests one remote payment order. Every successful call
// creates exactly one provider order; deduplication is the caller's
// responsibility via the receipt.
func (c *HTTPClient) CreateOrder(ctx context.Context, req usecase.ProviderOrderRequest) (*model.PaymentOrder, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/orders")

	body, err := json.Marshal(orderRequest{
		Amount:         req.AmountMinorUnits,
		Currency:       req.Currency,
		Receipt:        req.Receipt,
		PaymentCapture: 1,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &GatewayError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GatewayError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		message := resp.Status
		var payload errorResponse
		if err := json.Unmarshal(raw, &payload); err == nil && payload.Error.Description != "" {
			message = payload.Error.Description
		}
		c.logger.Error("provider order creation failed", slog.Int("status", resp.StatusCode))
		return nil, &GatewayError{StatusCode: resp.StatusCode, Message: message}
	}

	var data orderResponse
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &GatewayError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	return &model.PaymentOrder{
		ProviderOrderID:  data.ID,
		AmountMinorUnits: data.Amount,
		Currency:         data.Currency,
		Receipt:          data.Receipt,
	}, nil
}
