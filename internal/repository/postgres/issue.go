package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type issueRepository struct {
	db *sql.DB
}

func NewIssueRepository(db *sql.DB) repository.IssueRepository {
	return &issueRepository{db: db}
}

const issueColumns = `id, user_id, username, category, title, description, location, priority, status, upvotes, created_at, updated_at`

func (r *issueRepository) Create(ctx context.Context, i *domain.Issue) error {
	query := `INSERT INTO issues (` + issueColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query, i.ID, i.UserID, i.Username, i.Category, i.Title,
		i.Description, i.Location, i.Priority, i.Status, i.Upvotes, i.CreatedAt, i.UpdatedAt)
	return err
}

func (r *issueRepository) GetByID(ctx context.Context, id string) (*domain.Issue, error) {
	i := &domain.Issue{}
	query := `SELECT ` + issueColumns + ` FROM issues WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&i.ID, &i.UserID, &i.Username, &i.Category,
		&i.Title, &i.Description, &i.Location, &i.Priority, &i.Status, &i.Upvotes, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIssueNotFound
		}
		return nil, err
	}
	return i, nil
}

func (r *issueRepository) List(ctx context.Context) ([]domain.Issue, error) {
	return r.query(ctx, `SELECT `+issueColumns+` FROM issues ORDER BY created_at DESC`)
}

func (r *issueRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Issue, error) {
	return r.query(ctx, `SELECT `+issueColumns+` FROM issues WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *issueRepository) query(ctx context.Context, query string, args ...any) ([]domain.Issue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []domain.Issue
	for rows.Next() {
		var i domain.Issue
		if err := rows.Scan(&i.ID, &i.UserID, &i.Username, &i.Category, &i.Title, &i.Description,
			&i.Location, &i.Priority, &i.Status, &i.Upvotes, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		issues = append(issues, i)
	}
	return issues, rows.Err()
}

func (r *issueRepository) UpdateStatus(ctx context.Context, id string, status domain.IssueStatus) error {
	query := `UPDATE issues SET status = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrIssueNotFound)
}

func (r *issueRepository) Upvote(ctx context.Context, id string) (int32, error) {
	query := `UPDATE issues SET upvotes = upvotes + 1, updated_at = $1 WHERE id = $2 RETURNING upvotes`
	var upvotes int32
	err := r.db.QueryRowContext(ctx, query, time.Now(), id).Scan(&upvotes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrIssueNotFound
		}
		return 0, err
	}
	return upvotes, nil
}

func (r *issueRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM issues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrIssueNotFound)
}

func (r *issueRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM issues WHERE user_id = $1`, userID)
	return err
}

func (r *issueRepository) CountCreatedSince(ctx context.Context, since time.Time) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM issues WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}
