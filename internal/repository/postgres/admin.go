package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// The admin_account table holds exactly one row.

func (r *adminRepository) Get(ctx context.Context) (*domain.AdminAccount, error) {
	a := &domain.AdminAccount{}
	var updatedAt sql.NullTime
	query := `SELECT username, password_hash, updated_at FROM admin_account LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&a.Username, &a.PasswordHash, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	if updatedAt.Valid {
		a.UpdatedAt = &updatedAt.Time
	}
	return a, nil
}

func (r *adminRepository) Update(ctx context.Context, admin *domain.AdminAccount) error {
	now := time.Now()
	admin.UpdatedAt = &now
	query := `UPDATE admin_account SET username = $1, password_hash = $2, updated_at = $3`
	_, err := r.db.ExecContext(ctx, query, admin.Username, admin.PasswordHash, admin.UpdatedAt)
	return err
}

func (r *adminRepository) Seed(ctx context.Context, admin *domain.AdminAccount) error {
	query := `INSERT INTO admin_account (username, password_hash)
	          SELECT $1, $2 WHERE NOT EXISTS (SELECT 1 FROM admin_account)`
	_, err := r.db.ExecContext(ctx, query, admin.Username, admin.PasswordHash)
	return err
}
