package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/repository/postgres"
)

func TestRideRepository_Book(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewRideRepository(db)
	ctx := context.Background()

	booking := &domain.RideBooking{UserID: "acct-1", Username: "rahul", BookedAt: time.Now()}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT available_seats, passengers FROM rides WHERE id = \\$1 FOR UPDATE").
			WithArgs("r1").
			WillReturnRows(sqlmock.NewRows([]string{"available_seats", "passengers"}).AddRow(2, []byte(`[]`)))
		mock.ExpectExec("UPDATE rides SET available_seats = available_seats - 1").
			WithArgs(sqlmock.AnyArg(), "r1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Book(ctx, "r1", booking)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoSeatsLeft", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT available_seats, passengers FROM rides WHERE id = \\$1 FOR UPDATE").
			WithArgs("r1").
			WillReturnRows(sqlmock.NewRows([]string{"available_seats", "passengers"}).AddRow(0, []byte(`[]`)))
		mock.ExpectRollback()

		err := repo.Book(ctx, "r1", booking)
		assert.ErrorIs(t, err, domain.ErrRideFull)
	})

	t.Run("DuplicatePassenger", func(t *testing.T) {
		existing, _ := json.Marshal([]domain.RideBooking{{UserID: "acct-1"}})

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT available_seats, passengers FROM rides WHERE id = \\$1 FOR UPDATE").
			WithArgs("r1").
			WillReturnRows(sqlmock.NewRows([]string{"available_seats", "passengers"}).AddRow(2, existing))
		mock.ExpectRollback()

		err := repo.Book(ctx, "r1", booking)
		assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
	})

	t.Run("UnknownRide", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT available_seats, passengers FROM rides WHERE id = \\$1 FOR UPDATE").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"available_seats", "passengers"}))
		mock.ExpectRollback()

		err := repo.Book(ctx, "ghost", booking)
		assert.ErrorIs(t, err, domain.ErrRideNotFound)
	})
}

func TestRideRepository_MarkDepartedCompleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewRideRepository(db)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectExec("UPDATE rides SET status = \\$1 WHERE status = \\$2 AND departure_at < \\$3").
		WithArgs(string(domain.RideStatusCompleted), string(domain.RideStatusActive), now).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.MarkDepartedCompleted(ctx, now)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
