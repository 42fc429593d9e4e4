package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type cafeteriaService struct {
	orderRepo repository.OrderRepository
}

func NewCafeteriaService(orderRepo repository.OrderRepository) CafeteriaService {
	return &cafeteriaService{orderRepo: orderRepo}
}

func (s *cafeteriaService) PlaceOrder(ctx context.Context, userID, username string, items []domain.OrderItem) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domain.ErrValidation)
	}

	var total int64
	for _, item := range items {
		if item.Name == "" || item.Quantity <= 0 || item.PriceCents < 0 {
			return nil, fmt.Errorf("%w: invalid order item", domain.ErrValidation)
		}
		total += item.PriceCents * int64(item.Quantity)
	}

	order := &domain.Order{
		ID:         uuid.NewString(),
		UserID:     userID,
		Username:   username,
		Items:      items,
		TotalCents: total,
		Status:     domain.OrderStatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func (s *cafeteriaService) ListMine(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orderRepo.ListByUserID(ctx, userID)
}

func (s *cafeteriaService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *cafeteriaService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	switch status {
	case domain.OrderStatusPending, domain.OrderStatusPreparing, domain.OrderStatusDelivered, domain.OrderStatusCancelled:
	default:
		return fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, status)
	}
	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}
