package service

import (
	"context"
	"time"

	"hostelhub-backend/internal/domain"
)

// SignupRequest carries the fields a student submits when requesting an
// account.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Course   string `json:"course"`
	Year     string `json:"year"`
	RoomNo   string `json:"room_no"`
	Mobile   string `json:"mobile"`
}

type SignupService interface {
	// SubmitSignup validates the request and queues it for admin
	// approval. It does not create an account.
	SubmitSignup(ctx context.Context, req *SignupRequest) (string, error)
	// Approve converts the pending signup into an account, stamping the
	// registration time with the approval instant.
	Approve(ctx context.Context, signupID, approvedBy string) (*domain.Account, error)
	// Reject discards the pending signup permanently.
	Reject(ctx context.Context, signupID string) error
	ListPending(ctx context.Context) ([]domain.PendingSignup, error)
	GetPending(ctx context.Context, signupID string) (*domain.PendingSignup, error)
}

type ModerationService interface {
	Block(ctx context.Context, accountID, adminUsername, reason string) error
	Unblock(ctx context.Context, accountID, adminUsername string) error
	// RemoveStudent deletes the account and cascades deletion of the
	// student's issues, orders, and feedback through the registered
	// purgers.
	RemoveStudent(ctx context.Context, accountID string) error
	ResetPassword(ctx context.Context, accountID, adminUsername, newPassword string) error
	ListStudents(ctx context.Context) ([]domain.Account, error)
	SearchStudents(ctx context.Context, query string) ([]domain.Account, error)
	// GetStudent returns the account with its block history populated.
	GetStudent(ctx context.Context, accountID string) (*domain.Account, error)
}

// UserDataPurger is implemented by collaborators holding per-user rows
// that must be removed when a student is removed.
type UserDataPurger interface {
	DeleteByUserID(ctx context.Context, userID string) error
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	AdminLogin(ctx context.Context, username, password string) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	ChangeAdminCredentials(ctx context.Context, currentUsername, currentPassword, newUsername, newPassword string) error
}

type ActivityService interface {
	StudentSummary(ctx context.Context) (*domain.StudentSummary, error)
	IssueCategoryStats(ctx context.Context) ([]domain.CategoryCount, error)
	CourseStats(ctx context.Context) ([]domain.CategoryCount, error)
	ActivityMetrics(ctx context.Context) (*domain.ActivityMetrics, error)
	MonthlyReport(ctx context.Context) (*domain.MonthlyReport, error)
}

type IssueService interface {
	Report(ctx context.Context, userID, username, category, title, description, location, priority string) (*domain.Issue, error)
	ListMine(ctx context.Context, userID string) ([]domain.Issue, error)
	ListAll(ctx context.Context) ([]domain.Issue, error)
	Upvote(ctx context.Context, issueID string) (int32, error)
	UpdateStatus(ctx context.Context, issueID string, status domain.IssueStatus) error
	Delete(ctx context.Context, issueID string) error
}

type CafeteriaService interface {
	PlaceOrder(ctx context.Context, userID, username string, items []domain.OrderItem) (*domain.Order, error)
	ListMine(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
}

type FeedbackService interface {
	Submit(ctx context.Context, userID, username, category string, rating int32, text string) (*domain.Feedback, error)
	ListMine(ctx context.Context, userID string) ([]domain.Feedback, error)
	ListAll(ctx context.Context) ([]domain.Feedback, error)
}

type LostFoundService interface {
	Post(ctx context.Context, userID, username string, itemType domain.LostFoundType, name, description, location, contact string) (*domain.LostFoundItem, error)
	List(ctx context.Context) ([]domain.LostFoundItem, error)
	Resolve(ctx context.Context, itemID string) error
	Delete(ctx context.Context, itemID string) error
}

type TransportService interface {
	OfferRide(ctx context.Context, driverID, driverName, from, to string, departureAt string, seats int32, priceCents int64) (*domain.Ride, error)
	SearchRides(ctx context.Context, from, to string) ([]domain.Ride, error)
	BookRide(ctx context.Context, rideID, userID, username string) error
	ListMyRides(ctx context.Context, driverID string) ([]domain.Ride, error)
	// CompleteDepartedRides retires active rides whose departure time has
	// passed and reports how many were closed.
	CompleteDepartedRides(ctx context.Context, now time.Time) (int64, error)
}

type EmailService interface {
	SendSignupApproved(ctx context.Context, email, username string) error
	SendSignupRejected(ctx context.Context, email, username string) error
	SendAccountBlocked(ctx context.Context, email, username, reason string) error
	SendAccountUnblocked(ctx context.Context, email, username string) error
	SendPendingSignupDigest(ctx context.Context, adminEmail string, pending []domain.PendingSignup) error
}
