package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

const (
	newStudentWindow = 7 * 24 * time.Hour
	activeWindow     = 30 * 24 * time.Hour
)

type activityService struct {
	accountRepo  repository.AccountRepository
	issueRepo    repository.IssueRepository
	orderRepo    repository.OrderRepository
	feedbackRepo repository.FeedbackRepository
}

func NewActivityService(
	accountRepo repository.AccountRepository,
	issueRepo repository.IssueRepository,
	orderRepo repository.OrderRepository,
	feedbackRepo repository.FeedbackRepository,
) ActivityService {
	return &activityService{
		accountRepo:  accountRepo,
		issueRepo:    issueRepo,
		orderRepo:    orderRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *activityService) StudentSummary(ctx context.Context) (*domain.StudentSummary, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	issues, err := s.issueRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	feedback, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	activeUsers := make(map[string]bool)
	for _, i := range issues {
		if now.Sub(i.CreatedAt) <= activeWindow {
			activeUsers[i.UserID] = true
		}
	}
	for _, o := range orders {
		if now.Sub(o.CreatedAt) <= activeWindow {
			activeUsers[o.UserID] = true
		}
	}
	for _, f := range feedback {
		if now.Sub(f.CreatedAt) <= activeWindow {
			activeUsers[f.UserID] = true
		}
	}

	summary := &domain.StudentSummary{}
	for _, a := range accounts {
		summary.Total++
		if a.IsBlocked {
			summary.Blocked++
			continue
		}
		if now.Sub(a.RegisteredAt) <= newStudentWindow {
			summary.New++
		}
		if activeUsers[a.ID] {
			summary.Active++
		}
	}

	return summary, nil
}

func (s *activityService) IssueCategoryStats(ctx context.Context) ([]domain.CategoryCount, error) {
	issues, err := s.issueRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(issues))
	for _, i := range issues {
		keys = append(keys, i.Category)
	}
	return histogram(keys), nil
}

func (s *activityService) CourseStats(ctx context.Context) ([]domain.CategoryCount, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(accounts))
	for _, a := range accounts {
		keys = append(keys, a.Course)
	}
	return histogram(keys), nil
}

func (s *activityService) ActivityMetrics(ctx context.Context) (*domain.ActivityMetrics, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	issues, err := s.issueRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	feedback, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	metrics := &domain.ActivityMetrics{}

	if n := len(accounts); n > 0 {
		metrics.AvgIssuesPerStudent = float64(len(issues)) / float64(n)
		metrics.AvgOrdersPerStudent = float64(len(orders)) / float64(n)
	}

	metrics.AvgFeedbackRating = averageRating(feedback)

	// Resolution rate is 0, not NaN, with no issues on file.
	if len(issues) > 0 {
		resolved := 0
		for _, i := range issues {
			if i.Status == domain.IssueStatusResolved {
				resolved++
			}
		}
		metrics.ResolutionRate = float64(resolved) / float64(len(issues)) * 100
	}

	return metrics, nil
}

func (s *activityService) MonthlyReport(ctx context.Context) (*domain.MonthlyReport, error) {
	// The report covers everything since the first day of the previous
	// month, not a rolling lookback. time.Date normalizes January back
	// into December of the prior year.
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)

	newIssues, err := s.issueRepo.CountCreatedSince(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to count issues: %w", err)
	}
	newOrders, err := s.orderRepo.CountCreatedSince(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	newFeedback, err := s.feedbackRepo.CountCreatedSince(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to count feedback: %w", err)
	}

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var newRegistrations int32
	for _, a := range accounts {
		if !a.RegisteredAt.Before(from) {
			newRegistrations++
		}
	}

	issues, err := s.issueRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(issues))
	for _, i := range issues {
		if !i.CreatedAt.Before(from) {
			keys = append(keys, i.Category)
		}
	}

	feedback, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	recent := feedback[:0:0]
	for _, f := range feedback {
		if !f.CreatedAt.Before(from) {
			recent = append(recent, f)
		}
	}

	return &domain.MonthlyReport{
		From:             from,
		To:               now,
		NewRegistrations: newRegistrations,
		NewIssues:        newIssues,
		FoodOrders:       newOrders,
		FeedbackReceived: newFeedback,
		IssueBreakdown:   histogram(keys),
		AvgRating:        averageRating(recent),
	}, nil
}

// histogram buckets the keys and orders buckets by descending count.
// Equal counts keep the order the keys first appeared in, which the
// stable sort preserves.
func histogram(keys []string) []domain.CategoryCount {
	counts := make(map[string]int32)
	var order []string
	for _, k := range keys {
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	result := make([]domain.CategoryCount, 0, len(order))
	for _, k := range order {
		result = append(result, domain.CategoryCount{Category: k, Count: counts[k]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

func averageRating(feedback []domain.Feedback) float64 {
	if len(feedback) == 0 {
		return 0
	}
	var sum int64
	for _, f := range feedback {
		sum += int64(f.Rating)
	}
	return float64(sum) / float64(len(feedback))
}
