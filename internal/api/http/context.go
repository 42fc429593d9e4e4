package http

import (
	"context"

	"hostelhub-backend/internal/domain"
)

type contextKey int

const identityKey contextKey = iota

// Identity is the authenticated caller stored in the request context by
// the auth middleware.
type Identity struct {
	SessionID string
	Kind      domain.SessionKind
	SubjectID string
	Username  string
}

func withIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the caller identity set by the middleware.
// Handlers behind the middleware can rely on it being present.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok
}
