package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/lock"
	"hostelhub-backend/internal/logger"
	"hostelhub-backend/internal/repository"
)

type moderationService struct {
	accountRepo repository.AccountRepository
	purgers     []UserDataPurger
	locker      lock.Locker
	emailSvc    EmailService
}

// NewModerationService wires the account repository together with the
// purgers that drop a removed student's dependent data. Issue, order and
// feedback repositories register as purgers; lost-and-found posts and
// offered rides intentionally survive account removal.
func NewModerationService(
	accountRepo repository.AccountRepository,
	locker lock.Locker,
	emailSvc EmailService,
	purgers ...UserDataPurger,
) ModerationService {
	return &moderationService{
		accountRepo: accountRepo,
		purgers:     purgers,
		locker:      locker,
		emailSvc:    emailSvc,
	}
}

// defaultBlockReason stands in when the admin blocks without giving one.
const defaultBlockReason = "No reason provided"

func (s *moderationService) Block(ctx context.Context, accountID, adminUsername, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultBlockReason
	}

	if err := acquireLock(ctx, s.locker, lock.AccountKey(accountID)); err != nil {
		return err
	}
	defer releaseLock(ctx, s.locker, lock.AccountKey(accountID))

	acct, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acct.IsBlocked {
		return domain.ErrAlreadyBlocked
	}

	info := &domain.BlockInfo{
		BlockedAt: time.Now().UTC(),
		BlockedBy: adminUsername,
		Reason:    reason,
	}
	if err := s.accountRepo.SetBlocked(ctx, accountID, info); err != nil {
		return fmt.Errorf("failed to block account: %w", err)
	}

	_ = s.emailSvc.SendAccountBlocked(ctx, acct.Email, acct.Username, info.Reason)

	logger.Info("account blocked", "account_id", accountID, "blocked_by", adminUsername)
	return nil
}

// Unblock closes the active block into the history and clears it. The
// repository performs both writes in one transaction so a crash cannot
// leave the block cleared without its history entry.
func (s *moderationService) Unblock(ctx context.Context, accountID, adminUsername string) error {
	if err := acquireLock(ctx, s.locker, lock.AccountKey(accountID)); err != nil {
		return err
	}
	defer releaseLock(ctx, s.locker, lock.AccountKey(accountID))

	acct, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !acct.IsBlocked || acct.BlockInfo == nil {
		return domain.ErrNotBlocked
	}

	rec := &domain.BlockRecord{
		BlockedAt:   acct.BlockInfo.BlockedAt,
		BlockedBy:   acct.BlockInfo.BlockedBy,
		Reason:      acct.BlockInfo.Reason,
		UnblockedAt: time.Now().UTC(),
		UnblockedBy: adminUsername,
	}
	if err := s.accountRepo.ClearBlocked(ctx, accountID, rec); err != nil {
		return fmt.Errorf("failed to unblock account: %w", err)
	}

	_ = s.emailSvc.SendAccountUnblocked(ctx, acct.Email, acct.Username)

	logger.Info("account unblocked", "account_id", accountID, "unblocked_by", adminUsername)
	return nil
}

func (s *moderationService) RemoveStudent(ctx context.Context, accountID string) error {
	if err := acquireLock(ctx, s.locker, lock.AccountKey(accountID)); err != nil {
		return err
	}
	defer releaseLock(ctx, s.locker, lock.AccountKey(accountID))

	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return err
	}

	for _, p := range s.purgers {
		if err := p.DeleteByUserID(ctx, accountID); err != nil {
			return fmt.Errorf("failed to purge student data: %w", err)
		}
	}

	if err := s.accountRepo.Delete(ctx, accountID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	logger.Info("account removed", "account_id", accountID)
	return nil
}

func (s *moderationService) ResetPassword(ctx context.Context, accountID, adminUsername, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}

	if err := acquireLock(ctx, s.locker, lock.AccountKey(accountID)); err != nil {
		return err
	}
	defer releaseLock(ctx, s.locker, lock.AccountKey(accountID))

	acct, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	acct.PasswordHash = string(hash)
	acct.PasswordResetAt = &now
	acct.PasswordResetBy = adminUsername

	if err := s.accountRepo.Update(ctx, acct); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	logger.Info("password reset", "account_id", accountID, "reset_by", adminUsername)
	return nil
}

func (s *moderationService) ListStudents(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.List(ctx)
}

func (s *moderationService) SearchStudents(ctx context.Context, query string) ([]domain.Account, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.accountRepo.List(ctx)
	}
	return s.accountRepo.Search(ctx, query)
}

func (s *moderationService) GetStudent(ctx context.Context, accountID string) (*domain.Account, error) {
	acct, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	history, err := s.accountRepo.ListBlockHistory(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load block history: %w", err)
	}
	acct.BlockHistory = history

	return acct, nil
}
