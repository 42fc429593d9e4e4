package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/lock"
	"hostelhub-backend/internal/logger"
	"hostelhub-backend/internal/repository"
)

type transportService struct {
	rideRepo repository.RideRepository
	locker   lock.Locker
}

func NewTransportService(rideRepo repository.RideRepository, locker lock.Locker) TransportService {
	return &transportService{
		rideRepo: rideRepo,
		locker:   locker,
	}
}

func (s *transportService) OfferRide(ctx context.Context, driverID, driverName, from, to string, departureAt string, seats int32, priceCents int64) (*domain.Ride, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: from and to locations are required", domain.ErrValidation)
	}
	if seats < 1 {
		return nil, fmt.Errorf("%w: at least one seat is required", domain.ErrValidation)
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}

	departure, err := time.Parse(time.RFC3339, departureAt)
	if err != nil {
		return nil, fmt.Errorf("%w: departure time must be RFC 3339", domain.ErrValidation)
	}
	if departure.Before(time.Now()) {
		return nil, fmt.Errorf("%w: departure time is in the past", domain.ErrValidation)
	}

	ride := &domain.Ride{
		ID:             uuid.NewString(),
		DriverID:       driverID,
		DriverName:     driverName,
		FromLocation:   from,
		ToLocation:     to,
		DepartureAt:    departure.UTC(),
		TotalSeats:     seats,
		AvailableSeats: seats,
		PriceCents:     priceCents,
		Status:         domain.RideStatusActive,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	logger.Info("ride offered", "ride_id", ride.ID, "driver", driverName)
	return ride, nil
}

// SearchRides filters active future rides by origin and destination.
// Matching is case-insensitive substring; empty filters match anything.
func (s *transportService) SearchRides(ctx context.Context, from, to string) ([]domain.Ride, error) {
	rides, err := s.rideRepo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))

	matched := rides[:0:0]
	for _, r := range rides {
		if from != "" && !strings.Contains(strings.ToLower(r.FromLocation), from) {
			continue
		}
		if to != "" && !strings.Contains(strings.ToLower(r.ToLocation), to) {
			continue
		}
		matched = append(matched, r)
	}
	return matched, nil
}

func (s *transportService) BookRide(ctx context.Context, rideID, userID, username string) error {
	if err := acquireLock(ctx, s.locker, lock.RideKey(rideID)); err != nil {
		return err
	}
	defer releaseLock(ctx, s.locker, lock.RideKey(rideID))

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return err
	}
	if ride.DriverID == userID {
		return domain.ErrOwnRide
	}
	if ride.Status != domain.RideStatusActive {
		return domain.ErrRideNotFound
	}

	booking := &domain.RideBooking{
		UserID:   userID,
		Username: username,
		BookedAt: time.Now().UTC(),
	}

	// The repository re-checks seats and duplicates inside its own
	// transaction; the lock only narrows the retry window.
	if err := s.rideRepo.Book(ctx, rideID, booking); err != nil {
		return err
	}

	logger.Info("ride booked", "ride_id", rideID, "user_id", userID)
	return nil
}

func (s *transportService) ListMyRides(ctx context.Context, driverID string) ([]domain.Ride, error) {
	return s.rideRepo.ListByDriverID(ctx, driverID)
}

func (s *transportService) CompleteDepartedRides(ctx context.Context, now time.Time) (int64, error) {
	return s.rideRepo.MarkDepartedCompleted(ctx, now)
}
