package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/logger"
	"hostelhub-backend/internal/repository"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, username, email, password_hash, course, year, room_no, mobile,
	registered_at, approved_at, COALESCE(approved_by, ''), is_blocked,
	blocked_at, COALESCE(blocked_by, ''), COALESCE(block_reason, ''),
	password_reset_at, COALESCE(password_reset_by, '')`

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, username, email, password_hash, course, year, room_no, mobile,
	          registered_at, approved_at, approved_by, is_blocked)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.Username, a.Email, a.PasswordHash,
		a.Course, a.Year, a.RoomNo, a.Mobile, a.RegisteredAt, a.ApprovedAt, a.ApprovedBy, a.IsBlocked)
	return err
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	// Exact match: usernames are case-sensitive as stored.
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`
	return r.scanAccount(r.db.QueryRowContext(ctx, query, username))
}

func (r *accountRepository) scanAccount(row *sql.Row) (*domain.Account, error) {
	a := &domain.Account{}
	var approvedAt, blockedAt, resetAt sql.NullTime
	var blockedBy, blockReason string

	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Course, &a.Year,
		&a.RoomNo, &a.Mobile, &a.RegisteredAt, &approvedAt, &a.ApprovedBy, &a.IsBlocked,
		&blockedAt, &blockedBy, &blockReason, &resetAt, &a.PasswordResetBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	if approvedAt.Valid {
		a.ApprovedAt = &approvedAt.Time
	}
	if resetAt.Valid {
		a.PasswordResetAt = &resetAt.Time
	}
	if a.IsBlocked && blockedAt.Valid {
		a.BlockInfo = &domain.BlockInfo{
			BlockedAt: blockedAt.Time,
			BlockedBy: blockedBy,
			Reason:    blockReason,
		}
	}
	return a, nil
}

func (r *accountRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE username = $1 OR email = $2)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, username, email).Scan(&exists)
	return exists, err
}

func (r *accountRepository) Update(ctx context.Context, a *domain.Account) error {
	query := `UPDATE accounts SET username=$1, email=$2, password_hash=$3, course=$4, year=$5,
	          room_no=$6, mobile=$7, password_reset_at=$8, password_reset_by=$9 WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query, a.Username, a.Email, a.PasswordHash,
		a.Course, a.Year, a.RoomNo, a.Mobile, a.PasswordResetAt, a.PasswordResetBy, a.ID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrAccountNotFound)
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrAccountNotFound)
}

func (r *accountRepository) List(ctx context.Context) ([]domain.Account, error) {
	logger.DatabaseCall("SELECT", "accounts")
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY registered_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()
	accounts, err := scanAccounts(rows)
	logger.DatabaseResult("SELECT", int64(len(accounts)), err)
	return accounts, err
}

func (r *accountRepository) Search(ctx context.Context, query string) ([]domain.Account, error) {
	sqlQuery := `SELECT ` + accountColumns + ` FROM accounts
	          WHERE username ILIKE $1 OR email ILIKE $1 OR course ILIKE $1 OR room_no ILIKE $1
	          ORDER BY registered_at DESC`
	rows, err := r.db.QueryContext(ctx, sqlQuery, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAccounts(rows)
}

func scanAccounts(rows *sql.Rows) ([]domain.Account, error) {
	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		var approvedAt, blockedAt, resetAt sql.NullTime
		var blockedBy, blockReason string

		if err := rows.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Course, &a.Year,
			&a.RoomNo, &a.Mobile, &a.RegisteredAt, &approvedAt, &a.ApprovedBy, &a.IsBlocked,
			&blockedAt, &blockedBy, &blockReason, &resetAt, &a.PasswordResetBy); err != nil {
			return nil, err
		}
		if approvedAt.Valid {
			a.ApprovedAt = &approvedAt.Time
		}
		if resetAt.Valid {
			a.PasswordResetAt = &resetAt.Time
		}
		if a.IsBlocked && blockedAt.Valid {
			a.BlockInfo = &domain.BlockInfo{
				BlockedAt: blockedAt.Time,
				BlockedBy: blockedBy,
				Reason:    blockReason,
			}
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *accountRepository) SetBlocked(ctx context.Context, id string, info *domain.BlockInfo) error {
	query := `UPDATE accounts SET is_blocked = TRUE, blocked_at = $1, blocked_by = $2, block_reason = $3
	          WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, info.BlockedAt, info.BlockedBy, info.Reason, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrAccountNotFound)
}

// ClearBlocked moves the active block into block_history and clears the
// block columns in a single transaction so no partially-unblocked state
// is ever visible.
func (r *accountRepository) ClearBlocked(ctx context.Context, id string, rec *domain.BlockRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	histQuery := `INSERT INTO block_history (account_id, blocked_at, blocked_by, reason, unblocked_at, unblocked_by)
	              VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(ctx, histQuery, id, rec.BlockedAt, rec.BlockedBy,
		rec.Reason, rec.UnblockedAt, rec.UnblockedBy); err != nil {
		return fmt.Errorf("failed to append block history: %w", err)
	}

	clearQuery := `UPDATE accounts SET is_blocked = FALSE, blocked_at = NULL, blocked_by = NULL, block_reason = NULL
	               WHERE id = $1`
	res, err := tx.ExecContext(ctx, clearQuery, id)
	if err != nil {
		return err
	}
	if err := requireRow(res, domain.ErrAccountNotFound); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *accountRepository) ListBlockHistory(ctx context.Context, id string) ([]domain.BlockRecord, error) {
	query := `SELECT blocked_at, blocked_by, reason, unblocked_at, unblocked_by
	          FROM block_history WHERE account_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.BlockRecord
	for rows.Next() {
		var rec domain.BlockRecord
		if err := rows.Scan(&rec.BlockedAt, &rec.BlockedBy, &rec.Reason,
			&rec.UnblockedAt, &rec.UnblockedBy); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// requireRow converts a zero-row update/delete into the given domain error.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
