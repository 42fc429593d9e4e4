// Package session holds the ephemeral login state behind the session
// gate. Sessions are never persisted to the database: logout (or store
// restart, for the memory store) removes them.
package session

import (
	"context"

	"hostelhub-backend/internal/domain"
)

// Store keeps active sessions keyed by session id.
type Store interface {
	Put(ctx context.Context, sess *domain.Session) error
	// Get returns domain.ErrSessionNotFound for unknown or logged-out ids.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
