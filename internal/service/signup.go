package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/lock"
	"hostelhub-backend/internal/logger"
	"hostelhub-backend/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type signupService struct {
	signupRepo  repository.PendingSignupRepository
	accountRepo repository.AccountRepository
	locker      lock.Locker
	emailSvc    EmailService
}

func NewSignupService(
	signupRepo repository.PendingSignupRepository,
	accountRepo repository.AccountRepository,
	locker lock.Locker,
	emailSvc EmailService,
) SignupService {
	return &signupService{
		signupRepo:  signupRepo,
		accountRepo: accountRepo,
		locker:      locker,
		emailSvc:    emailSvc,
	}
}

func (s *signupService) SubmitSignup(ctx context.Context, req *SignupRequest) (string, error) {
	if err := validateSignup(req); err != nil {
		return "", err
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	exists, err := s.accountRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return "", fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if exists {
		return "", domain.ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	signup := &domain.PendingSignup{
		ID:          uuid.NewString(),
		Username:    username,
		Email:       email,
		Password:    string(hash),
		Course:      strings.TrimSpace(req.Course),
		Year:        strings.TrimSpace(req.Year),
		RoomNo:      strings.TrimSpace(req.RoomNo),
		Mobile:      strings.TrimSpace(req.Mobile),
		Status:      domain.SignupStatusPending,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.signupRepo.Create(ctx, signup); err != nil {
		return "", fmt.Errorf("failed to store signup request: %w", err)
	}

	logger.Info("signup request submitted", "signup_id", signup.ID, "username", username)
	return signup.ID, nil
}

// Approve moves the pending signup into the accounts table. The account
// registration time is the approval instant, not the submission time.
// Concurrent approve or reject of the same signup is serialized through
// the locker; whichever loses the race sees ErrSignupNotFound.
func (s *signupService) Approve(ctx context.Context, signupID, approvedBy string) (*domain.Account, error) {
	if err := acquireLock(ctx, s.locker, lock.AccountKey(signupID)); err != nil {
		return nil, err
	}
	defer releaseLock(ctx, s.locker, lock.AccountKey(signupID))

	signup, err := s.signupRepo.GetByID(ctx, signupID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:           signup.ID,
		Username:     signup.Username,
		Email:        signup.Email,
		PasswordHash: signup.Password,
		Course:       signup.Course,
		Year:         signup.Year,
		RoomNo:       signup.RoomNo,
		Mobile:       signup.Mobile,
		RegisteredAt: now,
		ApprovedAt:   &now,
		ApprovedBy:   approvedBy,
	}

	// Promote deletes the pending row and creates the account in one
	// transaction; a failure leaves the signup pending and retryable.
	if err := s.signupRepo.Promote(ctx, account); err != nil {
		return nil, err
	}

	_ = s.emailSvc.SendSignupApproved(ctx, account.Email, account.Username)

	logger.Info("signup approved", "account_id", account.ID, "approved_by", approvedBy)
	return account, nil
}

func (s *signupService) Reject(ctx context.Context, signupID string) error {
	if err := acquireLock(ctx, s.locker, lock.AccountKey(signupID)); err != nil {
		return err
	}
	defer releaseLock(ctx, s.locker, lock.AccountKey(signupID))

	signup, err := s.signupRepo.GetByID(ctx, signupID)
	if err != nil {
		return err
	}

	if err := s.signupRepo.Delete(ctx, signupID); err != nil {
		return fmt.Errorf("failed to remove rejected signup: %w", err)
	}

	_ = s.emailSvc.SendSignupRejected(ctx, signup.Email, signup.Username)

	logger.Info("signup rejected", "signup_id", signupID)
	return nil
}

func (s *signupService) ListPending(ctx context.Context) ([]domain.PendingSignup, error) {
	return s.signupRepo.List(ctx)
}

func (s *signupService) GetPending(ctx context.Context, signupID string) (*domain.PendingSignup, error) {
	return s.signupRepo.GetByID(ctx, signupID)
}

func validateSignup(req *SignupRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if len(strings.TrimSpace(req.Username)) < 3 {
		return fmt.Errorf("%w: username must be at least 3 characters", domain.ErrValidation)
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	if len(req.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}
	if strings.TrimSpace(req.Course) == "" {
		return fmt.Errorf("%w: course is required", domain.ErrValidation)
	}
	if strings.TrimSpace(req.Year) == "" {
		return fmt.Errorf("%w: year is required", domain.ErrValidation)
	}
	if strings.TrimSpace(req.RoomNo) == "" {
		return fmt.Errorf("%w: room number is required", domain.ErrValidation)
	}
	if len(strings.TrimSpace(req.Mobile)) < 10 {
		return fmt.Errorf("%w: mobile number must be at least 10 digits", domain.ErrValidation)
	}
	return nil
}
