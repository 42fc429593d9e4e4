package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/security"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)

	token, err := tm.Generate("sess-1", domain.SessionKindStudent, "acct-1", "rahul")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, domain.SessionKindStudent, claims.Kind)
	assert.Equal(t, "acct-1", claims.Subject)
	assert.Equal(t, "rahul", claims.Username)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := security.NewTokenManager(testSecret, -time.Minute)

	token, err := tm.Generate("sess-1", domain.SessionKindAdmin, "", "administrator")
	assert.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)
	other := security.NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour)

	token, err := tm.Generate("sess-1", domain.SessionKindStudent, "acct-1", "rahul")
	assert.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)

	_, err := tm.Validate("not.a.token")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
