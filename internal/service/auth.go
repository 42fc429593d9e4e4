package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/lock"
	"hostelhub-backend/internal/logger"
	"hostelhub-backend/internal/repository"
	"hostelhub-backend/internal/security"
	"hostelhub-backend/internal/session"
)

type authService struct {
	accountRepo repository.AccountRepository
	adminRepo   repository.AdminRepository
	sessions    session.Store
	tokens      security.TokenManager
	locker      lock.Locker
}

func NewAuthService(
	accountRepo repository.AccountRepository,
	adminRepo repository.AdminRepository,
	sessions session.Store,
	tokens security.TokenManager,
	locker lock.Locker,
) AuthService {
	return &authService{
		accountRepo: accountRepo,
		adminRepo:   adminRepo,
		sessions:    sessions,
		tokens:      tokens,
		locker:      locker,
	}
}

// Login authenticates a student. The block check runs only after the
// credentials match, so a blocked account with a wrong password still
// reports ErrInvalidCredentials and never leaks its block state.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	acct, err := s.accountRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if acct.IsBlocked {
		return nil, domain.ErrAccountBlocked
	}

	return s.openSession(ctx, domain.SessionKindStudent, acct.ID, acct.Username)
}

func (s *authService) AdminLogin(ctx context.Context, username, password string) (*domain.Session, error) {
	admin, err := s.adminRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if admin.Username != strings.TrimSpace(username) {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.openSession(ctx, domain.SessionKindAdmin, admin.Username, admin.Username)
}

func (s *authService) openSession(ctx context.Context, kind domain.SessionKind, subjectID, username string) (*domain.Session, error) {
	sess := &domain.Session{
		ID:        uuid.NewString(),
		Kind:      kind,
		SubjectID: subjectID,
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}

	token, err := s.tokens.Generate(sess.ID, kind, subjectID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	sess.Token = token

	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	logger.Info("session opened", "kind", kind, "username", username)
	return sess, nil
}

// Logout drops the session from the store. Tokens carrying the dropped
// session id stop passing the gate immediately, even before expiry.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	logger.Info("session closed", "session_id", sessionID)
	return nil
}

func (s *authService) ChangeAdminCredentials(ctx context.Context, currentUsername, currentPassword, newUsername, newPassword string) error {
	newUsername = strings.TrimSpace(newUsername)
	if len(newUsername) < 3 {
		return fmt.Errorf("%w: username must be at least 3 characters", domain.ErrValidation)
	}
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}

	if err := acquireLock(ctx, s.locker, lock.AdminKey()); err != nil {
		return err
	}
	defer releaseLock(ctx, s.locker, lock.AdminKey())

	admin, err := s.adminRepo.Get(ctx)
	if err != nil {
		return err
	}

	if admin.Username != strings.TrimSpace(currentUsername) {
		return domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	admin.Username = newUsername
	admin.PasswordHash = string(hash)
	admin.UpdatedAt = &now

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return fmt.Errorf("failed to update admin credentials: %w", err)
	}

	logger.Info("admin credentials changed", "username", newUsername)
	return nil
}
