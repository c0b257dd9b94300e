package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/zestcart/zestcart/internal/domain/errors"
	"github.com/zestcart/zestcart/internal/domain/model"
	"github.com/zestcart/zestcart/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage, kept as
// an interface so tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type adminRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Admins() repository.AdminRepository {
	return &adminRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            customer_name TEXT NOT NULL,
            mobile TEXT NOT NULL,
            total_amount NUMERIC(14,2) NOT NULL,
            line_items JSONB NOT NULL DEFAULT '[]',
            status TEXT NOT NULL,
            receipt UUID NOT NULL,
            provider_order_id TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS admins (
            id SERIAL PRIMARY KEY,
            admin_id TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const orderColumns = `id, customer_name, mobile, total_amount, line_items, status, receipt, provider_order_id, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o     model.Order
		items []byte
	)
	err := row.Scan(&o.ID, &o.Name, &o.Mobile, &o.TotalAmount, &items, &o.Status, &o.Receipt, &o.ProviderOrderID, &o.Date, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Products); err != nil {
			return nil, fmt.Errorf("decode line items: %w", err)
		}
	}
	return &o, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (id, customer_name, mobile, total_amount, line_items, status, receipt)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at, updated_at`

	items, err := json.Marshal(order.Products)
	if err != nil {
		return nil, fmt.Errorf("encode line items: %w", err)
	}

	stored := *order
	err = r.storage.pool.QueryRow(ctx, query,
		order.ID, order.Name, order.Mobile, order.TotalAmount, items, order.Status, order.Receipt,
	).Scan(&stored.Date, &stored.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkDelivered performs a compare-and-set keyed on the prior status so
// concurrent callers cannot both observe Undelivered and both succeed.
func (r *orderRepository) MarkDelivered(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `UPDATE orders SET status=$1, updated_at=NOW()
              WHERE id=$2 AND status=$3
              RETURNING ` + orderColumns

	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, model.OrderStatusDelivered, id, model.OrderStatusUndelivered))
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// CAS matched nothing: the order is either missing or already delivered.
	var status model.OrderStatus
	err = r.storage.pool.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return nil, domainErrors.ErrAlreadyDelivered
}

func (r *orderRepository) AttachPaymentOrder(ctx context.Context, id uuid.UUID, providerOrderID string) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `UPDATE orders SET provider_order_id=$1, updated_at=NOW() WHERE id=$2`
		tag, err := tx.Exec(ctx, query, providerOrderID, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
}

// --- AdminRepository implementation ---

func (r *adminRepository) Create(ctx context.Context, adminID, passwordHash string) (bool, error) {
	const query = `INSERT INTO admins (admin_id, password_hash) VALUES ($1, $2)
                   ON CONFLICT (admin_id) DO NOTHING`
	tag, err := r.storage.pool.Exec(ctx, query, adminID, passwordHash)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *adminRepository) GetByAdminID(ctx context.Context, adminID string) (*model.AdminCredential, error) {
	const query = `SELECT id, admin_id, password_hash, created_at FROM admins WHERE admin_id=$1`
	var a model.AdminCredential
	err := r.storage.pool.QueryRow(ctx, query, adminID).Scan(&a.ID, &a.AdminID, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
