package postgres

import (
	"context"
	"database/sql"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type feedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	query := `INSERT INTO feedback (id, user_id, username, category, rating, text, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, f.ID, f.UserID, f.Username, f.Category, f.Rating, f.Text, f.CreatedAt)
	return err
}

func (r *feedbackRepository) List(ctx context.Context) ([]domain.Feedback, error) {
	return r.query(ctx, `SELECT id, user_id, username, category, rating, text, created_at
	          FROM feedback ORDER BY created_at DESC`)
}

func (r *feedbackRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Feedback, error) {
	return r.query(ctx, `SELECT id, user_id, username, category, rating, text, created_at
	          FROM feedback WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *feedbackRepository) query(ctx context.Context, query string, args ...any) ([]domain.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedback []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Username, &f.Category, &f.Rating, &f.Text, &f.CreatedAt); err != nil {
			return nil, err
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}

func (r *feedbackRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM feedback WHERE user_id = $1`, userID)
	return err
}

func (r *feedbackRepository) CountCreatedSince(ctx context.Context, since time.Time) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM feedback WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}
