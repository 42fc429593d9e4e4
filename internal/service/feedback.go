package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo}
}

func (s *feedbackService) Submit(ctx context.Context, userID, username, category string, rating int32, text string) (*domain.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}

	fb := &domain.Feedback{
		ID:        uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Category:  strings.TrimSpace(category),
		Rating:    rating,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return fb, nil
}

func (s *feedbackService) ListMine(ctx context.Context, userID string) ([]domain.Feedback, error) {
	return s.feedbackRepo.ListByUserID(ctx, userID)
}

func (s *feedbackService) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedbackRepo.List(ctx)
}
