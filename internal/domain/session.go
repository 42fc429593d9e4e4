package domain

import "time"

type SessionKind string

const (
	SessionKindStudent SessionKind = "student"
	SessionKindAdmin   SessionKind = "admin"
)

// Session is the ephemeral login state returned by the session gate.
// A session holds either a student account reference or the admin
// identity, never both. Logout removes it from the session store, which
// invalidates the token even before its JWT expiry.
type Session struct {
	ID        string      `json:"id"`
	Kind      SessionKind `json:"kind"`
	SubjectID string      `json:"subject_id"` // account id for students, empty for admin
	Username  string      `json:"username"`
	Token     string      `json:"token"`
	CreatedAt time.Time   `json:"created_at"`
}
