package test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domainErrors "github.com/zestcart/zestcart/internal/domain/errors"
	"github.com/zestcart/zestcart/internal/domain/model"
)

// OrderRepositoryStub stores orders in-memory for tests. MarkDelivered
// implements the same compare-and-set contract as the real repository
// so concurrency properties can be exercised without a database.
type OrderRepositoryStub struct {
	CreateFn        func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn       func(context.Context, uuid.UUID) (*model.Order, error)
	ListFn          func(context.Context) ([]model.Order, error)
	MarkDeliveredFn func(context.Context, uuid.UUID) (*model.Order, error)
	AttachFn        func(context.Context, uuid.UUID, string) error

	mu       sync.Mutex
	ByID     map[uuid.UUID]*model.Order
	Attached map[uuid.UUID]string
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		ByID:     make(map[uuid.UUID]*model.Order),
		Attached: make(map[uuid.UUID]string),
	}
}

// Seed stores an order directly, bypassing Create overrides.
func (s *OrderRepositoryStub) Seed(order *model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ByID == nil {
		s.ByID = make(map[uuid.UUID]*model.Order)
	}
	copied := *order
	s.ByID[order.ID] = &copied
}

// Create persists the order in-memory unless an override is configured.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.Seed(order)
	copied := *order
	return &copied, nil
}

// GetByID fetches a stored order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.ByID[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored orders.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, 0, len(s.ByID))
	for _, order := range s.ByID {
		result = append(result, *order)
	}
	return result, nil
}

// MarkDelivered transitions Undelivered to Delivered exactly once.
func (s *OrderRepositoryStub) MarkDelivered(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.MarkDeliveredFn != nil {
		return s.MarkDeliveredFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if order.Status == model.OrderStatusDelivered {
		return nil, domainErrors.ErrAlreadyDelivered
	}
	order.Status = model.OrderStatusDelivered
	copied := *order
	return &copied, nil
}

// AttachPaymentOrder records the provider order id for a stored order.
func (s *OrderRepositoryStub) AttachPaymentOrder(ctx context.Context, id uuid.UUID, providerOrderID string) error {
	if s.AttachFn != nil {
		return s.AttachFn(ctx, id, providerOrderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ByID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	if s.Attached == nil {
		s.Attached = make(map[uuid.UUID]string)
	}
	s.Attached[id] = providerOrderID
	return nil
}

// AdminRepositoryStub stores the operator credential in-memory.
type AdminRepositoryStub struct {
	CreateFn func(context.Context, string, string) (bool, error)
	GetFn    func(context.Context, string) (*model.AdminCredential, error)

	mu     sync.Mutex
	Admins map[string]*model.AdminCredential
	Next   int64
}

// NewAdminRepositoryStub constructs stub repository with initialized map.
func NewAdminRepositoryStub() *AdminRepositoryStub {
	return &AdminRepositoryStub{Admins: make(map[string]*model.AdminCredential), Next: 1}
}

// Create inserts the credential unless one already exists.
func (s *AdminRepositoryStub) Create(ctx context.Context, adminID, passwordHash string) (bool, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, adminID, passwordHash)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Admins == nil {
		s.Admins = make(map[string]*model.AdminCredential)
	}
	if _, exists := s.Admins[adminID]; exists {
		return false, nil
	}
	if s.Next == 0 {
		s.Next = 1
	}
	s.Admins[adminID] = &model.AdminCredential{ID: s.Next, AdminID: adminID, PasswordHash: passwordHash}
	s.Next++
	return true, nil
}

// GetByAdminID fetches the credential or returns not found.
func (s *AdminRepositoryStub) GetByAdminID(ctx context.Context, adminID string) (*model.AdminCredential, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, adminID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if admin, ok := s.Admins[adminID]; ok {
		copied := *admin
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}
