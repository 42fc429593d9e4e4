package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/lock"
	"hostelhub-backend/internal/service"
)

func TestModerationService_Block(t *testing.T) {
	ctx := context.Background()

	t.Run("RecordsBlockAndNotifies", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewModerationService(accountRepo, lock.NewMemoryLocker(), emailSvc)

		acct := &domain.Account{ID: "acct-1", Username: "rahul", Email: "rahul@campus.edu"}
		accountRepo.On("GetByID", ctx, "acct-1").Return(acct, nil).Once()
		accountRepo.On("SetBlocked", ctx, "acct-1", mock.MatchedBy(func(info *domain.BlockInfo) bool {
			return info.BlockedBy == "administrator" && info.Reason == "noise complaints" && !info.BlockedAt.IsZero()
		})).Return(nil).Once()
		emailSvc.On("SendAccountBlocked", ctx, "rahul@campus.edu", "rahul", "noise complaints").Return(nil).Once()

		err := svc.Block(ctx, "acct-1", "administrator", "noise complaints")
		assert.NoError(t, err)
		accountRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("BlockingBlockedAccountFails", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		svc := service.NewModerationService(accountRepo, lock.NewMemoryLocker(), new(MockEmailService))

		acct := &domain.Account{ID: "acct-1", IsBlocked: true}
		accountRepo.On("GetByID", ctx, "acct-1").Return(acct, nil).Once()

		err := svc.Block(ctx, "acct-1", "administrator", "again")
		assert.ErrorIs(t, err, domain.ErrAlreadyBlocked)
		accountRepo.AssertNotCalled(t, "SetBlocked", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EmptyReasonGetsDefault", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewModerationService(accountRepo, lock.NewMemoryLocker(), emailSvc)

		acct := &domain.Account{ID: "acct-1", Username: "rahul", Email: "rahul@campus.edu"}
		accountRepo.On("GetByID", ctx, "acct-1").Return(acct, nil).Once()
		accountRepo.On("SetBlocked", ctx, "acct-1", mock.MatchedBy(func(info *domain.BlockInfo) bool {
			return info.Reason == "No reason provided"
		})).Return(nil).Once()
		emailSvc.On("SendAccountBlocked", ctx, "rahul@campus.edu", "rahul", "No reason provided").Return(nil).Once()

		err := svc.Block(ctx, "acct-1", "administrator", "   ")
		assert.NoError(t, err)
		accountRepo.AssertExpectations(t)
	})
}

func TestModerationService_Unblock(t *testing.T) {
	ctx := context.Background()

	t.Run("ClosesBlockIntoHistory", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewModerationService(accountRepo, lock.NewMemoryLocker(), emailSvc)

		blockedAt := time.Now().Add(-24 * time.Hour)
		acct := &domain.Account{
			ID:        "acct-1",
			Username:  "rahul",
			Email:     "rahul@campus.edu",
			IsBlocked: true,
			BlockInfo: &domain.BlockInfo{BlockedAt: blockedAt, BlockedBy: "administrator", Reason: "noise"},
		}
		accountRepo.On("GetByID", ctx, "acct-1").Return(acct, nil).Once()
		accountRepo.On("ClearBlocked", ctx, "acct-1", mock.MatchedBy(func(rec *domain.BlockRecord) bool {
			return rec.BlockedAt.Equal(blockedAt) && rec.Reason == "noise" &&
				rec.UnblockedBy == "warden" && rec.UnblockedAt.After(blockedAt)
		})).Return(nil).Once()
		emailSvc.On("SendAccountUnblocked", ctx, "rahul@campus.edu", "rahul").Return(nil).Once()

		err := svc.Unblock(ctx, "acct-1", "warden")
		assert.NoError(t, err)
		accountRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("UnblockingUnblockedAccountFails", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		svc := service.NewModerationService(accountRepo, lock.NewMemoryLocker(), new(MockEmailService))

		accountRepo.On("GetByID", ctx, "acct-1").Return(&domain.Account{ID: "acct-1"}, nil).Once()

		err := svc.Unblock(ctx, "acct-1", "warden")
		assert.ErrorIs(t, err, domain.ErrNotBlocked)
	})
}

func TestModerationService_RemoveStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("CascadesThroughPurgers", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		issueRepo := new(MockIssueRepo)
		orderRepo := new(MockOrderRepo)
		feedbackRepo := new(MockFeedbackRepo)
		svc := service.NewModerationService(accountRepo, lock.NewMemoryLocker(), new(MockEmailService),
			issueRepo, orderRepo, feedbackRepo)

		accountRepo.On("GetByID", ctx, "acct-1").Return(&domain.Account{ID: "acct-1"}, nil).Once()
		issueRepo.On("DeleteByUserID", ctx, "acct-1").Return(nil).Once()
		orderRepo.On("DeleteByUserID", ctx, "acct-1").Return(nil).Once()
		feedbackRepo.On("DeleteByUserID", ctx, "acct-1").Return(nil).Once()
		accountRepo.On("Delete", ctx, "acct-1").Return(nil).Once()

		err := svc.RemoveStudent(ctx, "acct-1")
		assert.NoError(t, err)
		issueRepo.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
		feedbackRepo.AssertExpectations(t)
		accountRepo.AssertExpectations(t)
	})

	t.Run("MissingAccountFails", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		issueRepo := new(MockIssueRepo)
		svc := service.NewModerationService(accountRepo, lock.NewMemoryLocker(), new(MockEmailService), issueRepo)

		accountRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrAccountNotFound).Once()

		err := svc.RemoveStudent(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
		issueRepo.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
	})
}

func TestModerationService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	accountRepo := new(MockAccountRepo)
	svc := service.NewModerationService(accountRepo, lock.NewMemoryLocker(), new(MockEmailService))

	acct := &domain.Account{ID: "acct-1", PasswordHash: "old-hash"}
	accountRepo.On("GetByID", ctx, "acct-1").Return(acct, nil).Once()
	accountRepo.On("Update", ctx, mock.MatchedBy(func(a *domain.Account) bool {
		return a.PasswordResetBy == "administrator" && a.PasswordResetAt != nil &&
			bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("NewPass123")) == nil
	})).Return(nil).Once()

	err := svc.ResetPassword(ctx, "acct-1", "administrator", "NewPass123")
	assert.NoError(t, err)
	accountRepo.AssertExpectations(t)
}

func TestModerationService_GetStudent(t *testing.T) {
	ctx := context.Background()

	accountRepo := new(MockAccountRepo)
	svc := service.NewModerationService(accountRepo, lock.NewMemoryLocker(), new(MockEmailService))

	history := []domain.BlockRecord{{Reason: "noise", UnblockedBy: "warden"}}
	accountRepo.On("GetByID", ctx, "acct-1").Return(&domain.Account{ID: "acct-1"}, nil).Once()
	accountRepo.On("ListBlockHistory", ctx, "acct-1").Return(history, nil).Once()

	acct, err := svc.GetStudent(ctx, "acct-1")
	assert.NoError(t, err)
	assert.Len(t, acct.BlockHistory, 1)
	assert.Equal(t, "noise", acct.BlockHistory[0].Reason)
}
