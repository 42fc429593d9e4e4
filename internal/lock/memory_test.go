package lock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hostelhub-backend/internal/lock"
)

func TestMemoryLocker_AcquireRelease(t *testing.T) {
	ml := lock.NewMemoryLocker()
	ctx := context.Background()
	key := lock.AccountKey("acct-1")

	acquired, err := ml.Acquire(ctx, key, time.Minute)
	assert.NoError(t, err)
	assert.True(t, acquired)

	// Held lock cannot be acquired again.
	acquired, err = ml.Acquire(ctx, key, time.Minute)
	assert.NoError(t, err)
	assert.False(t, acquired)

	released, err := ml.Release(ctx, key)
	assert.NoError(t, err)
	assert.True(t, released)

	acquired, err = ml.Acquire(ctx, key, time.Minute)
	assert.NoError(t, err)
	assert.True(t, acquired)
}

func TestMemoryLocker_ExpiredLockCanBeReacquired(t *testing.T) {
	ml := lock.NewMemoryLocker()
	ctx := context.Background()
	key := lock.RideKey("r1")

	acquired, err := ml.Acquire(ctx, key, 10*time.Millisecond)
	assert.NoError(t, err)
	assert.True(t, acquired)

	time.Sleep(20 * time.Millisecond)

	acquired, err = ml.Acquire(ctx, key, time.Minute)
	assert.NoError(t, err)
	assert.True(t, acquired)
}

func TestMemoryLocker_AcquireWithRetry(t *testing.T) {
	ml := lock.NewMemoryLocker()
	ctx := context.Background()
	key := lock.AdminKey()

	acquired, err := ml.Acquire(ctx, key, 30*time.Millisecond)
	assert.NoError(t, err)
	assert.True(t, acquired)

	// Retries outlive the holder's ttl and eventually win.
	acquired, err = ml.AcquireWithRetry(ctx, key, time.Minute, 10, 10*time.Millisecond)
	assert.NoError(t, err)
	assert.True(t, acquired)
}

func TestMemoryLocker_RetryGivesUp(t *testing.T) {
	ml := lock.NewMemoryLocker()
	ctx := context.Background()
	key := lock.AccountKey("acct-2")

	_, err := ml.Acquire(ctx, key, time.Minute)
	assert.NoError(t, err)

	acquired, err := ml.AcquireWithRetry(ctx, key, time.Minute, 2, time.Millisecond)
	assert.NoError(t, err)
	assert.False(t, acquired)
}

func TestMemoryLocker_ReleaseOfUnheldLock(t *testing.T) {
	ml := lock.NewMemoryLocker()

	released, err := ml.Release(context.Background(), lock.AccountKey("never-held"))
	assert.NoError(t, err)
	assert.False(t, released)
}

func TestMemoryLocker_CancelledContext(t *testing.T) {
	ml := lock.NewMemoryLocker()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ml.Acquire(ctx, lock.AccountKey("acct-3"), time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}
