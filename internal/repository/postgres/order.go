package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Order items are stored as a JSONB column: they are only ever read back
// with the order that owns them.

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}
	query := `INSERT INTO orders (id, user_id, username, items, total_cents, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.db.ExecContext(ctx, query, o.ID, o.UserID, o.Username, items, o.TotalCents, o.Status, o.CreatedAt)
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	o := &domain.Order{}
	var items []byte
	query := `SELECT id, user_id, username, items, total_cents, status, created_at FROM orders WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.UserID, &o.Username, &items,
		&o.TotalCents, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	return o, nil
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return r.query(ctx, `SELECT id, user_id, username, items, total_cents, status, created_at
	          FROM orders ORDER BY created_at DESC`)
}

func (r *orderRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.query(ctx, `SELECT id, user_id, username, items, total_cents, status, created_at
	          FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *orderRepository) query(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		var items []byte
		if err := rows.Scan(&o.ID, &o.UserID, &o.Username, &items, &o.TotalCents, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("failed to decode order items: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrOrderNotFound)
}

func (r *orderRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE user_id = $1`, userID)
	return err
}

func (r *orderRepository) CountCreatedSince(ctx context.Context, since time.Time) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}
