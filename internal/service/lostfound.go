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

type lostFoundService struct {
	itemRepo repository.LostFoundRepository
}

func NewLostFoundService(itemRepo repository.LostFoundRepository) LostFoundService {
	return &lostFoundService{itemRepo: itemRepo}
}

func (s *lostFoundService) Post(ctx context.Context, userID, username string, itemType domain.LostFoundType, name, description, location, contact string) (*domain.LostFoundItem, error) {
	if itemType != domain.LostFoundTypeLost && itemType != domain.LostFoundTypeFound {
		return nil, fmt.Errorf("%w: type must be lost or found", domain.ErrValidation)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: item name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(contact) == "" {
		return nil, fmt.Errorf("%w: contact is required", domain.ErrValidation)
	}

	item := &domain.LostFoundItem{
		ID:          uuid.NewString(),
		UserID:      userID,
		Username:    username,
		Type:        itemType,
		Name:        strings.TrimSpace(name),
		Description: description,
		Location:    strings.TrimSpace(location),
		Contact:     strings.TrimSpace(contact),
		Status:      domain.LostFoundStatusActive,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create lost and found post: %w", err)
	}
	return item, nil
}

func (s *lostFoundService) List(ctx context.Context) ([]domain.LostFoundItem, error) {
	return s.itemRepo.List(ctx)
}

func (s *lostFoundService) Resolve(ctx context.Context, itemID string) error {
	return s.itemRepo.UpdateStatus(ctx, itemID, domain.LostFoundStatusResolved)
}

func (s *lostFoundService) Delete(ctx context.Context, itemID string) error {
	return s.itemRepo.Delete(ctx, itemID)
}
