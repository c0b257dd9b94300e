package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zestcart/zestcart/internal/domain/model"
	"github.com/zestcart/zestcart/internal/server/http/handlers"
	testhelpers "github.com/zestcart/zestcart/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.CommerceFacadeStub{
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			OrdersFn: func(context.Context) ([]model.Order, error) {
				return []model.Order{{
					ID:          uuid.New(),
					Name:        "Asha",
					TotalAmount: decimal.RequireFromString("250.50"),
					Status:      model.OrderStatusUndelivered,
					Date:        time.Unix(0, 0),
				}}, nil
			},
		},
		PaymentFacadeStub: testhelpers.PaymentFacadeStub{},
		AdminFacadeStub:   testhelpers.AdminFacadeStub{},
	}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{"adminId": "Admin", "password": "secret"})
	req := httptest.NewRequest(http.MethodPost, "/validate-admin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for validate-admin, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/getOrders", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for getOrders, got %d", resp.Code)
	}

	body, _ = json.Marshal(map[string]any{"amount": 10.5})
	req = httptest.NewRequest(http.MethodPost, "/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for pay, got %d", resp.Code)
	}
}

func TestSetupStatusUpdateGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.CommerceFacadeStub{}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{"status": "Delivered"})
	target := "/updateOrderStatus/" + uuid.NewString()

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without operator token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer operator-token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with operator token, got %d", resp.Code)
	}
}

var _ handlers.CommerceFacade = (*testhelpers.CommerceFacadeStub)(nil)
