package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	httpapi "hostelhub-backend/internal/api/http"
	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/security"
	"hostelhub-backend/internal/session"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func openTestSession(t *testing.T, tm security.TokenManager, store session.Store, kind domain.SessionKind) (string, string) {
	t.Helper()
	sess := &domain.Session{
		ID:        "sess-1",
		Kind:      kind,
		SubjectID: "acct-1",
		Username:  "rahul",
		CreatedAt: time.Now(),
	}
	token, err := tm.Generate(sess.ID, kind, sess.SubjectID, sess.Username)
	assert.NoError(t, err)
	sess.Token = token
	assert.NoError(t, store.Put(context.Background(), sess))
	return sess.ID, token
}

func TestAuthMiddleware_SessionGate(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)
	store := session.NewMemoryStore()
	mw := httpapi.NewAuthMiddleware(tm, store)

	var gotIdentity *httpapi.Identity
	handler := mw.RequireStudent(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity, _ = httpapi.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	sessID, token := openTestSession(t, tm, store, domain.SessionKindStudent)

	t.Run("ValidTokenPasses", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		if assert.NotNil(t, gotIdentity) {
			assert.Equal(t, "acct-1", gotIdentity.SubjectID)
			assert.Equal(t, "rahul", gotIdentity.Username)
		}
	})

	t.Run("MissingHeaderRejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("GarbageTokenRejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()

		handler(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("LogoutRevokesToken", func(t *testing.T) {
		// The token itself is still unexpired; only its session is gone.
		assert.NoError(t, store.Delete(context.Background(), sessID))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RoleSeparation(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)
	store := session.NewMemoryStore()
	mw := httpapi.NewAuthMiddleware(tm, store)

	_, studentToken := openTestSession(t, tm, store, domain.SessionKindStudent)

	adminOnly := mw.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	rec := httptest.NewRecorder()

	adminOnly(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
