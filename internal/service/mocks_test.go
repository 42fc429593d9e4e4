package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"hostelhub-backend/internal/domain"
)

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, acct *domain.Account) error {
	args := m.Called(ctx, acct)
	return args.Error(0)
}
func (m *MockAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountRepo) Update(ctx context.Context, acct *domain.Account) error {
	args := m.Called(ctx, acct)
	return args.Error(0)
}
func (m *MockAccountRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) Search(ctx context.Context, query string) ([]domain.Account, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) SetBlocked(ctx context.Context, id string, info *domain.BlockInfo) error {
	args := m.Called(ctx, id, info)
	return args.Error(0)
}
func (m *MockAccountRepo) ClearBlocked(ctx context.Context, id string, rec *domain.BlockRecord) error {
	args := m.Called(ctx, id, rec)
	return args.Error(0)
}
func (m *MockAccountRepo) ListBlockHistory(ctx context.Context, id string) ([]domain.BlockRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]domain.BlockRecord), args.Error(1)
}

// MockSignupRepo
type MockSignupRepo struct {
	mock.Mock
}

func (m *MockSignupRepo) Create(ctx context.Context, signup *domain.PendingSignup) error {
	args := m.Called(ctx, signup)
	return args.Error(0)
}
func (m *MockSignupRepo) GetByID(ctx context.Context, id string) (*domain.PendingSignup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingSignup), args.Error(1)
}
func (m *MockSignupRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSignupRepo) List(ctx context.Context) ([]domain.PendingSignup, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PendingSignup), args.Error(1)
}
func (m *MockSignupRepo) Promote(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// MockAdminRepo
type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) Get(ctx context.Context) (*domain.AdminAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminAccount), args.Error(1)
}
func (m *MockAdminRepo) Update(ctx context.Context, admin *domain.AdminAccount) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}
func (m *MockAdminRepo) Seed(ctx context.Context, admin *domain.AdminAccount) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

// MockIssueRepo
type MockIssueRepo struct {
	mock.Mock
}

func (m *MockIssueRepo) Create(ctx context.Context, issue *domain.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}
func (m *MockIssueRepo) GetByID(ctx context.Context, id string) (*domain.Issue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Issue), args.Error(1)
}
func (m *MockIssueRepo) List(ctx context.Context) ([]domain.Issue, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Issue), args.Error(1)
}
func (m *MockIssueRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Issue, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Issue), args.Error(1)
}
func (m *MockIssueRepo) UpdateStatus(ctx context.Context, id string, status domain.IssueStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockIssueRepo) Upvote(ctx context.Context, id string) (int32, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockIssueRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockIssueRepo) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockIssueRepo) CountCreatedSince(ctx context.Context, since time.Time) (int32, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int32), args.Error(1)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockOrderRepo) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockOrderRepo) CountCreatedSince(ctx context.Context, since time.Time) (int32, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int32), args.Error(1)
}

// MockFeedbackRepo
type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) Create(ctx context.Context, fb *domain.Feedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}
func (m *MockFeedbackRepo) List(ctx context.Context) ([]domain.Feedback, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Feedback), args.Error(1)
}
func (m *MockFeedbackRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Feedback, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Feedback), args.Error(1)
}
func (m *MockFeedbackRepo) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockFeedbackRepo) CountCreatedSince(ctx context.Context, since time.Time) (int32, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int32), args.Error(1)
}

// MockRideRepo
type MockRideRepo struct {
	mock.Mock
}

func (m *MockRideRepo) Create(ctx context.Context, ride *domain.Ride) error {
	args := m.Called(ctx, ride)
	return args.Error(0)
}
func (m *MockRideRepo) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ride), args.Error(1)
}
func (m *MockRideRepo) ListAvailable(ctx context.Context) ([]domain.Ride, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Ride), args.Error(1)
}
func (m *MockRideRepo) ListByDriverID(ctx context.Context, driverID string) ([]domain.Ride, error) {
	args := m.Called(ctx, driverID)
	return args.Get(0).([]domain.Ride), args.Error(1)
}
func (m *MockRideRepo) Book(ctx context.Context, rideID string, booking *domain.RideBooking) error {
	args := m.Called(ctx, rideID, booking)
	return args.Error(0)
}
func (m *MockRideRepo) UpdateStatus(ctx context.Context, id string, status domain.RideStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockRideRepo) MarkDepartedCompleted(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendSignupApproved(ctx context.Context, email, username string) error {
	args := m.Called(ctx, email, username)
	return args.Error(0)
}
func (m *MockEmailService) SendSignupRejected(ctx context.Context, email, username string) error {
	args := m.Called(ctx, email, username)
	return args.Error(0)
}
func (m *MockEmailService) SendAccountBlocked(ctx context.Context, email, username, reason string) error {
	args := m.Called(ctx, email, username, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendAccountUnblocked(ctx context.Context, email, username string) error {
	args := m.Called(ctx, email, username)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingSignupDigest(ctx context.Context, adminEmail string, pending []domain.PendingSignup) error {
	args := m.Called(ctx, adminEmail, pending)
	return args.Error(0)
}

// MockSessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Put(ctx context.Context, sess *domain.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}
func (m *MockSessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
