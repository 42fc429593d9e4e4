package http

import (
	"net/http"
	"strings"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/security"
	"hostelhub-backend/internal/session"
)

// AuthMiddleware validates bearer tokens and enforces the session gate:
// a token only passes while its session is still in the store, so logout
// revokes access immediately regardless of token expiry.
type AuthMiddleware struct {
	tokens   security.TokenManager
	sessions session.Store
}

func NewAuthMiddleware(tokens security.TokenManager, sessions session.Store) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		sessions: sessions,
	}
}

func (m *AuthMiddleware) authenticate(w http.ResponseWriter, r *http.Request) (*Identity, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		writeError(w, security.ErrInvalidToken)
		return nil, false
	}

	claims, err := m.tokens.Validate(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		writeError(w, err)
		return nil, false
	}

	sess, err := m.sessions.Get(r.Context(), claims.SessionID)
	if err != nil {
		writeError(w, err)
		return nil, false
	}

	return &Identity{
		SessionID: sess.ID,
		Kind:      sess.Kind,
		SubjectID: sess.SubjectID,
		Username:  sess.Username,
	}, true
}

// RequireAuth admits any authenticated caller, student or admin.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := m.authenticate(w, r)
		if !ok {
			return
		}
		next(w, r.WithContext(withIdentity(r.Context(), id)))
	}
}

// RequireStudent admits only student sessions.
func (m *AuthMiddleware) RequireStudent(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := m.authenticate(w, r)
		if !ok {
			return
		}
		if id.Kind != domain.SessionKindStudent {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "student access required"})
			return
		}
		next(w, r.WithContext(withIdentity(r.Context(), id)))
	}
}

// RequireAdmin admits only the admin session.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := m.authenticate(w, r)
		if !ok {
			return
		}
		if id.Kind != domain.SessionKindAdmin {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required"})
			return
		}
		next(w, r.WithContext(withIdentity(r.Context(), id)))
	}
}
