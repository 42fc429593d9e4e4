package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type pendingSignupRepository struct {
	db *sql.DB
}

func NewPendingSignupRepository(db *sql.DB) repository.PendingSignupRepository {
	return &pendingSignupRepository{db: db}
}

func (r *pendingSignupRepository) Create(ctx context.Context, s *domain.PendingSignup) error {
	query := `INSERT INTO pending_signups (id, username, email, password_hash, course, year, room_no, mobile, status, submitted_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Username, s.Email, s.Password,
		s.Course, s.Year, s.RoomNo, s.Mobile, s.Status, s.SubmittedAt)
	return err
}

func (r *pendingSignupRepository) GetByID(ctx context.Context, id string) (*domain.PendingSignup, error) {
	s := &domain.PendingSignup{}
	query := `SELECT id, username, email, password_hash, course, year, room_no, mobile, status, submitted_at
	          FROM pending_signups WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Username, &s.Email, &s.Password,
		&s.Course, &s.Year, &s.RoomNo, &s.Mobile, &s.Status, &s.SubmittedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSignupNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *pendingSignupRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pending_signups WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrSignupNotFound)
}

// Promote converts an approved signup into an account. Delete and insert
// run in one transaction so a crash cannot leave both rows behind, and a
// lost approve/reject race surfaces as ErrSignupNotFound rather than a
// key conflict on retry.
func (r *pendingSignupRepository) Promote(ctx context.Context, a *domain.Account) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM pending_signups WHERE id = $1`, a.ID)
	if err != nil {
		return err
	}
	if err := requireRow(res, domain.ErrSignupNotFound); err != nil {
		return err
	}

	insert := `INSERT INTO accounts (id, username, email, password_hash, course, year, room_no, mobile,
	           registered_at, approved_at, approved_by, is_blocked)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	if _, err := tx.ExecContext(ctx, insert, a.ID, a.Username, a.Email, a.PasswordHash,
		a.Course, a.Year, a.RoomNo, a.Mobile, a.RegisteredAt, a.ApprovedAt, a.ApprovedBy, a.IsBlocked); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return tx.Commit()
}

func (r *pendingSignupRepository) List(ctx context.Context) ([]domain.PendingSignup, error) {
	// Newest first, matching the admin panel ordering.
	query := `SELECT id, username, email, password_hash, course, year, room_no, mobile, status, submitted_at
	          FROM pending_signups ORDER BY submitted_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var signups []domain.PendingSignup
	for rows.Next() {
		var s domain.PendingSignup
		if err := rows.Scan(&s.ID, &s.Username, &s.Email, &s.Password, &s.Course,
			&s.Year, &s.RoomNo, &s.Mobile, &s.Status, &s.SubmittedAt); err != nil {
			return nil, err
		}
		signups = append(signups, s)
	}
	return signups, rows.Err()
}
