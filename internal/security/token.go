package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hostelhub-backend/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// SessionClaims ties a token to a session-store entry. Revoking the
// session (logout, admin credential rotation) invalidates the token
// regardless of its expiry.
type SessionClaims struct {
	SessionID string             `json:"session_id"`
	Kind      domain.SessionKind `json:"kind"`
	Username  string             `json:"username"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	Generate(sessionID string, kind domain.SessionKind, subjectID, username string) (string, error)
	Validate(tokenString string) (*SessionClaims, error)
}

type tokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expiry time.Duration) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (m *tokenManager) Generate(sessionID string, kind domain.SessionKind, subjectID, username string) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		Kind:      kind,
		Username:  username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "hostelhub",
			ID:        sessionID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
