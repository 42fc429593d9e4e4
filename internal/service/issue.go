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

type issueService struct {
	issueRepo repository.IssueRepository
}

func NewIssueService(issueRepo repository.IssueRepository) IssueService {
	return &issueService{issueRepo: issueRepo}
}

func (s *issueService) Report(ctx context.Context, userID, username, category, title, description, location, priority string) (*domain.Issue, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	switch priority {
	case "Low", "Medium", "High":
	default:
		return nil, fmt.Errorf("%w: priority must be Low, Medium, or High", domain.ErrValidation)
	}

	now := time.Now().UTC()
	issue := &domain.Issue{
		ID:          uuid.NewString(),
		UserID:      userID,
		Username:    username,
		Category:    strings.TrimSpace(category),
		Title:       strings.TrimSpace(title),
		Description: description,
		Location:    strings.TrimSpace(location),
		Priority:    priority,
		Status:      domain.IssueStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.issueRepo.Create(ctx, issue); err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}
	return issue, nil
}

func (s *issueService) ListMine(ctx context.Context, userID string) ([]domain.Issue, error) {
	return s.issueRepo.ListByUserID(ctx, userID)
}

func (s *issueService) ListAll(ctx context.Context) ([]domain.Issue, error) {
	return s.issueRepo.List(ctx)
}

func (s *issueService) Upvote(ctx context.Context, issueID string) (int32, error) {
	return s.issueRepo.Upvote(ctx, issueID)
}

func (s *issueService) UpdateStatus(ctx context.Context, issueID string, status domain.IssueStatus) error {
	switch status {
	case domain.IssueStatusPending, domain.IssueStatusInProgress, domain.IssueStatusResolved:
	default:
		return fmt.Errorf("%w: unknown issue status %q", domain.ErrValidation, status)
	}
	return s.issueRepo.UpdateStatus(ctx, issueID, status)
}

func (s *issueService) Delete(ctx context.Context, issueID string) error {
	return s.issueRepo.Delete(ctx, issueID)
}
