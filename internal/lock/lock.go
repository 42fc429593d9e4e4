// Package lock provides local and distributed locking for account and
// ride mutations. Single-node deployments use the in-memory locker;
// multi-node deployments use the Redis locker so concurrent admin
// actions from different instances cannot interleave.
package lock

import (
	"context"
	"time"
)

// Locker is the mutual-exclusion primitive guarding entity mutations.
type Locker interface {
	// Acquire attempts to acquire a lock. Returns true if the lock was
	// acquired, false if it is held elsewhere. The lock expires after ttl.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// AcquireWithRetry attempts to acquire a lock, retrying up to
	// maxRetries times with retryDelay between attempts.
	AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (bool, error)

	// Release releases a lock. Returns true if the lock was released,
	// false if it was not held.
	Release(ctx context.Context, key string) (bool, error)
}

// AccountKey returns the lock key serializing mutations of one account.
// Pending signups share the key space: a signup id becomes the account
// id on approval.
func AccountKey(accountID string) string {
	return "lock:account:" + accountID
}

// AdminKey returns the lock key serializing admin credential changes.
func AdminKey() string {
	return "lock:admin"
}

// RideKey returns the lock key serializing bookings on one ride.
func RideKey(rideID string) string {
	return "lock:ride:" + rideID
}
