package postgres

import (
	"database/sql"

	"hostelhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AccountRepository
	repository.PendingSignupRepository
	repository.AdminRepository
	repository.IssueRepository
	repository.OrderRepository
	repository.FeedbackRepository
	repository.LostFoundRepository
	repository.RideRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		AccountRepository:       NewAccountRepository(db),
		PendingSignupRepository: NewPendingSignupRepository(db),
		AdminRepository:         NewAdminRepository(db),
		IssueRepository:         NewIssueRepository(db),
		OrderRepository:         NewOrderRepository(db),
		FeedbackRepository:      NewFeedbackRepository(db),
		LostFoundRepository:     NewLostFoundRepository(db),
		RideRepository:          NewRideRepository(db),
	}
}
