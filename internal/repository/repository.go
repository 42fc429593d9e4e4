package repository

import (
	"context"
	"time"

	"hostelhub-backend/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, acct *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Update(ctx context.Context, acct *domain.Account) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Account, error)
	Search(ctx context.Context, query string) ([]domain.Account, error)

	// Block state. SetBlocked records the active block; ClearBlocked
	// appends the closed record to the history and clears the block in
	// a single transaction.
	SetBlocked(ctx context.Context, id string, info *domain.BlockInfo) error
	ClearBlocked(ctx context.Context, id string, rec *domain.BlockRecord) error
	ListBlockHistory(ctx context.Context, id string) ([]domain.BlockRecord, error)
}

type PendingSignupRepository interface {
	Create(ctx context.Context, signup *domain.PendingSignup) error
	GetByID(ctx context.Context, id string) (*domain.PendingSignup, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.PendingSignup, error)
	// Promote atomically deletes the pending row and inserts the account
	// built from it. A missing pending row yields ErrSignupNotFound.
	Promote(ctx context.Context, account *domain.Account) error
}

type AdminRepository interface {
	// Get returns the singleton admin account.
	Get(ctx context.Context) (*domain.AdminAccount, error)
	Update(ctx context.Context, admin *domain.AdminAccount) error
	// Seed inserts the admin account if none exists yet.
	Seed(ctx context.Context, admin *domain.AdminAccount) error
}

type IssueRepository interface {
	Create(ctx context.Context, issue *domain.Issue) error
	GetByID(ctx context.Context, id string) (*domain.Issue, error)
	List(ctx context.Context) ([]domain.Issue, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Issue, error)
	UpdateStatus(ctx context.Context, id string, status domain.IssueStatus) error
	Upvote(ctx context.Context, id string) (int32, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
	CountCreatedSince(ctx context.Context, since time.Time) (int32, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	DeleteByUserID(ctx context.Context, userID string) error
	CountCreatedSince(ctx context.Context, since time.Time) (int32, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) error
	List(ctx context.Context) ([]domain.Feedback, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Feedback, error)
	DeleteByUserID(ctx context.Context, userID string) error
	CountCreatedSince(ctx context.Context, since time.Time) (int32, error)
}

type LostFoundRepository interface {
	Create(ctx context.Context, item *domain.LostFoundItem) error
	GetByID(ctx context.Context, id string) (*domain.LostFoundItem, error)
	List(ctx context.Context) ([]domain.LostFoundItem, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.LostFoundItem, error)
	UpdateStatus(ctx context.Context, id string, status domain.LostFoundStatus) error
	Delete(ctx context.Context, id string) error
}

type RideRepository interface {
	Create(ctx context.Context, ride *domain.Ride) error
	GetByID(ctx context.Context, id string) (*domain.Ride, error)
	ListAvailable(ctx context.Context) ([]domain.Ride, error)
	ListByDriverID(ctx context.Context, driverID string) ([]domain.Ride, error)
	// Book decrements the available seats and appends the booking in one
	// transaction.
	Book(ctx context.Context, rideID string, booking *domain.RideBooking) error
	UpdateStatus(ctx context.Context, id string, status domain.RideStatus) error
	MarkDepartedCompleted(ctx context.Context, now time.Time) (int64, error)
}
