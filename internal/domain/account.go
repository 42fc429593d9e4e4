package domain

import "time"

// Account is an approved, login-capable student identity.
type Account struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Course       string     `json:"course"`
	Year         string     `json:"year"`
	RoomNo       string     `json:"room_no"`
	Mobile       string     `json:"mobile"`
	RegisteredAt time.Time  `json:"registered_at"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	ApprovedBy   string     `json:"approved_by,omitempty"` // empty for seed accounts

	IsBlocked bool       `json:"is_blocked"`
	BlockInfo *BlockInfo `json:"block_info,omitempty"` // present iff IsBlocked

	PasswordResetAt *time.Time `json:"password_reset_at,omitempty"`
	PasswordResetBy string     `json:"password_reset_by,omitempty"`

	// BlockHistory is append-only; entries are never modified once recorded.
	BlockHistory []BlockRecord `json:"block_history,omitempty"`
}

// BlockInfo describes the currently active block on an account.
type BlockInfo struct {
	BlockedAt time.Time `json:"blocked_at"`
	BlockedBy string    `json:"blocked_by"`
	Reason    string    `json:"reason"`
}

// BlockRecord is a closed block interval retained in the account's history.
type BlockRecord struct {
	BlockedAt   time.Time `json:"blocked_at"`
	BlockedBy   string    `json:"blocked_by"`
	Reason      string    `json:"reason"`
	UnblockedAt time.Time `json:"unblocked_at"`
	UnblockedBy string    `json:"unblocked_by"`
}

type SignupStatus string

const (
	SignupStatusPending SignupStatus = "pending"
)

// PendingSignup is an unapproved signup request awaiting an admin decision.
// It shares the account id: approval carries the id over unchanged.
type PendingSignup struct {
	ID          string       `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	Password    string       `json:"-"` // bcrypt hash, carried into the account on approval
	Course      string       `json:"course"`
	Year        string       `json:"year"`
	RoomNo      string       `json:"room_no"`
	Mobile      string       `json:"mobile"`
	Status      SignupStatus `json:"status"`
	SubmittedAt time.Time    `json:"submitted_at"`
}

// AdminAccount is the singleton administrator credential pair.
type AdminAccount struct {
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

const (
	// DefaultAdminUsername and DefaultAdminPassword seed the admin account
	// on first run. The password is stored hashed.
	DefaultAdminUsername = "administrator"
	DefaultAdminPassword = "SecurePass2024!"
)
