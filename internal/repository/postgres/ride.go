package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository"
)

type rideRepository struct {
	db *sql.DB
}

func NewRideRepository(db *sql.DB) repository.RideRepository {
	return &rideRepository{db: db}
}

const rideColumns = `id, driver_id, driver_name, from_location, to_location, departure_at,
	total_seats, available_seats, price_cents, status, passengers, created_at`

func (r *rideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	passengers, err := json.Marshal(ride.Passengers)
	if err != nil {
		return fmt.Errorf("failed to encode passengers: %w", err)
	}
	query := `INSERT INTO rides (` + rideColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.db.ExecContext(ctx, query, ride.ID, ride.DriverID, ride.DriverName,
		ride.FromLocation, ride.ToLocation, ride.DepartureAt, ride.TotalSeats,
		ride.AvailableSeats, ride.PriceCents, ride.Status, passengers, ride.CreatedAt)
	return err
}

func (r *rideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`
	rows, err := r.query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrRideNotFound
	}
	return &rows[0], nil
}

func (r *rideRepository) ListAvailable(ctx context.Context) ([]domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides
	          WHERE status = $1 AND available_seats > 0 ORDER BY departure_at`
	return r.query(ctx, query, domain.RideStatusActive)
}

func (r *rideRepository) ListByDriverID(ctx context.Context, driverID string) ([]domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE driver_id = $1 ORDER BY departure_at DESC`
	return r.query(ctx, query, driverID)
}

func (r *rideRepository) query(ctx context.Context, query string, args ...any) ([]domain.Ride, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []domain.Ride
	for rows.Next() {
		var ride domain.Ride
		var passengers []byte
		if err := rows.Scan(&ride.ID, &ride.DriverID, &ride.DriverName, &ride.FromLocation,
			&ride.ToLocation, &ride.DepartureAt, &ride.TotalSeats, &ride.AvailableSeats,
			&ride.PriceCents, &ride.Status, &passengers, &ride.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(passengers, &ride.Passengers); err != nil {
			return nil, fmt.Errorf("failed to decode passengers: %w", err)
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}

// Book appends the passenger and decrements the seat count atomically.
// The seat guard is re-checked inside the transaction so two concurrent
// bookings cannot oversell the ride.
func (r *rideRepository) Book(ctx context.Context, rideID string, booking *domain.RideBooking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var availableSeats int32
	var passengersRaw []byte
	query := `SELECT available_seats, passengers FROM rides WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, rideID).Scan(&availableSeats, &passengersRaw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRideNotFound
		}
		return err
	}
	if availableSeats <= 0 {
		return domain.ErrRideFull
	}

	var passengers []domain.RideBooking
	if err := json.Unmarshal(passengersRaw, &passengers); err != nil {
		return fmt.Errorf("failed to decode passengers: %w", err)
	}
	for _, p := range passengers {
		if p.UserID == booking.UserID {
			return domain.ErrAlreadyBooked
		}
	}
	passengers = append(passengers, *booking)

	updated, err := json.Marshal(passengers)
	if err != nil {
		return fmt.Errorf("failed to encode passengers: %w", err)
	}
	updateQuery := `UPDATE rides SET available_seats = available_seats - 1, passengers = $1 WHERE id = $2`
	if _, err := tx.ExecContext(ctx, updateQuery, updated, rideID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rideRepository) UpdateStatus(ctx context.Context, id string, status domain.RideStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE rides SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrRideNotFound)
}

func (r *rideRepository) MarkDepartedCompleted(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE rides SET status = $1 WHERE status = $2 AND departure_at < $3`
	res, err := r.db.ExecContext(ctx, query, domain.RideStatusCompleted, domain.RideStatusActive, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
