package jobs

import (
	"context"

	"hostelhub-backend/internal/logger"
)

// SendPendingSignupDigest mails the admin a summary of registration
// requests still waiting for review. No email is sent when the queue is
// empty.
func (jr *JobRunner) SendPendingSignupDigest() {
	jr.runWithRecovery("SendPendingSignupDigest", func() {
		ctx := context.Background()

		pending, err := jr.services.Signup.ListPending(ctx)
		if err != nil {
			logger.Error("Failed to list pending signups", "error", err)
			return
		}
		if len(pending) == 0 {
			logger.Info("No pending signups, skipping digest")
			return
		}

		if err := jr.services.Email.SendPendingSignupDigest(ctx, jr.config.Email.AdminAddress, pending); err != nil {
			logger.Error("Failed to send pending signup digest", "error", err)
			return
		}

		logger.Info("Pending signup digest sent", "pending_count", len(pending))
	})
}
