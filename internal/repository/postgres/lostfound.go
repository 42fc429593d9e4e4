package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type lostFoundRepository struct {
	db *sql.DB
}

func NewLostFoundRepository(db *sql.DB) repository.LostFoundRepository {
	return &lostFoundRepository{db: db}
}

const lostFoundColumns = `id, user_id, username, type, name, description, location, contact, status, created_at`

func (r *lostFoundRepository) Create(ctx context.Context, item *domain.LostFoundItem) error {
	query := `INSERT INTO lost_found_items (` + lostFoundColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, item.ID, item.UserID, item.Username, item.Type,
		item.Name, item.Description, item.Location, item.Contact, item.Status, item.CreatedAt)
	return err
}

func (r *lostFoundRepository) GetByID(ctx context.Context, id string) (*domain.LostFoundItem, error) {
	item := &domain.LostFoundItem{}
	query := `SELECT ` + lostFoundColumns + ` FROM lost_found_items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.UserID, &item.Username,
		&item.Type, &item.Name, &item.Description, &item.Location, &item.Contact, &item.Status, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *lostFoundRepository) List(ctx context.Context) ([]domain.LostFoundItem, error) {
	return r.query(ctx, `SELECT `+lostFoundColumns+` FROM lost_found_items ORDER BY created_at DESC`)
}

func (r *lostFoundRepository) ListByUserID(ctx context.Context, userID string) ([]domain.LostFoundItem, error) {
	return r.query(ctx, `SELECT `+lostFoundColumns+` FROM lost_found_items WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *lostFoundRepository) query(ctx context.Context, query string, args ...any) ([]domain.LostFoundItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.LostFoundItem
	for rows.Next() {
		var item domain.LostFoundItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.Username, &item.Type, &item.Name,
			&item.Description, &item.Location, &item.Contact, &item.Status, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *lostFoundRepository) UpdateStatus(ctx context.Context, id string, status domain.LostFoundStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE lost_found_items SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrItemNotFound)
}

func (r *lostFoundRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lost_found_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrItemNotFound)
}
