package jobs

import (
	"context"
	"time"

	"hostelhub-backend/internal/logger"
)

// SweepDepartedRides marks active rides whose departure time has passed
// as completed so they drop out of search results.
func (jr *JobRunner) SweepDepartedRides() {
	jr.runWithRecovery("SweepDepartedRides", func() {
		ctx := context.Background()

		n, err := jr.services.Transport.CompleteDepartedRides(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to sweep departed rides", "error", err)
			return
		}

		logger.Info("Departed rides swept", "completed", n)
	})
}
