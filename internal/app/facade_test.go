package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/zestcart/zestcart/internal/domain/errors"
	"github.com/zestcart/zestcart/internal/domain/model"
	pkgAuth "github.com/zestcart/zestcart/internal/pkg/auth"
	testhelpers "github.com/zestcart/zestcart/internal/test"
	"github.com/zestcart/zestcart/internal/usecase"
)

func newFacade() (*CommerceFacade, *testhelpers.OrderRepositoryStub, *testhelpers.AdminRepositoryStub, *testhelpers.PaymentProviderStub) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	orderRepo := testhelpers.NewOrderRepositoryStub()
	orderUC := usecase.NewOrderUseCase(orderRepo)

	provider := &testhelpers.PaymentProviderStub{}
	paymentUC := usecase.NewPaymentUseCase(provider, orderRepo, "INR")

	adminRepo := testhelpers.NewAdminRepositoryStub()
	hasher := pkgAuth.NewBcryptHasher(bcrypt.MinCost)
	strategy := pkgAuth.NewHMACStrategy("secret", pkgAuth.Options{})
	adminUC := usecase.NewAdminUseCase(adminRepo, hasher, strategy, logger)

	facade := NewCommerceFacade(orderUC, paymentUC, adminUC)
	return facade, orderRepo, adminRepo, provider
}

func validDraft() model.OrderDraft {
	return model.OrderDraft{
		Name:        "Asha",
		Mobile:      "9876543210",
		TotalAmount: decimal.RequireFromString("250.50"),
		Products: []model.LineItem{
			{Name: "Masala Tea", Price: decimal.RequireFromString("125.25"), Quantity: 2},
		},
	}
}

func TestCommerceFacadeOrders(t *testing.T) {
	facade, orders, _, _ := newFacade()

	order, err := facade.SubmitOrder(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if order.Status != model.OrderStatusUndelivered {
		t.Fatalf("expected Undelivered, got %q", order.Status)
	}
	if _, ok := orders.ByID[order.ID]; !ok {
		t.Fatal("expected order to be persisted")
	}

	listed, err := facade.Orders(context.Background())
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one order, got %v err=%v", listed, err)
	}

	delivered, err := facade.DeliverOrder(context.Background(), order.ID, model.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("deliver returned error: %v", err)
	}
	if delivered.Status != model.OrderStatusDelivered {
		t.Fatalf("expected Delivered, got %q", delivered.Status)
	}

	if _, err := facade.DeliverOrder(context.Background(), order.ID, model.OrderStatusDelivered); !errors.Is(err, domainErrors.ErrAlreadyDelivered) {
		t.Fatalf("expected already delivered error, got %v", err)
	}
}

func TestCommerceFacadePayments(t *testing.T) {
	facade, orders, _, provider := newFacade()

	payment, err := facade.CreatePaymentOrder(context.Background(), decimal.RequireFromString("10.50"), nil)
	if err != nil {
		t.Fatalf("create payment returned error: %v", err)
	}
	if payment.AmountMinorUnits != 1050 {
		t.Fatalf("expected 1050 paise, got %d", payment.AmountMinorUnits)
	}
	if len(provider.Requests) != 1 {
		t.Fatalf("expected one provider request, got %d", len(provider.Requests))
	}

	order, err := facade.SubmitOrder(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if _, err := facade.CreatePaymentOrder(context.Background(), order.TotalAmount, &order.ID); err != nil {
		t.Fatalf("linked payment returned error: %v", err)
	}
	if provider.Requests[1].Receipt != order.Receipt.String() {
		t.Fatalf("expected order receipt to be forwarded, got %q", provider.Requests[1].Receipt)
	}
	if orders.Attached[order.ID] == "" {
		t.Fatal("expected provider order id to be attached")
	}
}

func TestCommerceFacadeAdmin(t *testing.T) {
	facade, _, admins, _ := newFacade()

	if err := facade.BootstrapAdmin(context.Background(), "Admin", "secret"); err != nil {
		t.Fatalf("bootstrap returned error: %v", err)
	}
	if len(admins.Admins) != 1 {
		t.Fatalf("expected one credential, got %d", len(admins.Admins))
	}

	valid, token := facade.ValidateAdmin(context.Background(), "Admin", "secret")
	if !valid || token == "" {
		t.Fatalf("expected valid credentials with token, got valid=%v token=%q", valid, token)
	}

	adminID, err := facade.ParseOperatorToken(token)
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if adminID != "Admin" {
		t.Fatalf("expected Admin identity, got %q", adminID)
	}

	if valid, _ := facade.ValidateAdmin(context.Background(), "Admin", "wrong"); valid {
		t.Fatal("expected wrong password to be rejected")
	}
}
