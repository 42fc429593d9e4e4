package service

import (
	"context"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/lock"
)

const (
	lockTTL        = 10 * time.Second
	lockMaxRetries = 5
	lockRetryDelay = 100 * time.Millisecond
)

// acquireLock serializes a mutation on the given key, retrying briefly
// before giving up with ErrLockContended.
func acquireLock(ctx context.Context, locker lock.Locker, key string) error {
	acquired, err := locker.AcquireWithRetry(ctx, key, lockTTL, lockMaxRetries, lockRetryDelay)
	if err != nil {
		return err
	}
	if !acquired {
		return domain.ErrLockContended
	}
	return nil
}

func releaseLock(ctx context.Context, locker lock.Locker, key string) {
	_, _ = locker.Release(ctx, key)
}
