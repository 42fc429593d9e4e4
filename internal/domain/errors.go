package domain

import "errors"

// Domain errors represent business rule violations. They are distinct
// from infrastructure errors (database, network) and are terminal for
// the triggering call: no workflow retries internally.

var (
	// ErrValidation indicates malformed, user-correctable input.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateAccount indicates a username or email collision with
	// an existing account.
	ErrDuplicateAccount = errors.New("username or email already registered")

	// ErrAccountNotFound indicates the referenced account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSignupNotFound indicates the signup request does not exist or
	// has already been resolved.
	ErrSignupNotFound = errors.New("signup request not found")

	// ErrInvalidCredentials indicates a failed credential match.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountBlocked indicates correct credentials on a blocked
	// account. Callers must surface this distinctly from
	// ErrInvalidCredentials.
	ErrAccountBlocked = errors.New("account is blocked")

	// ErrAlreadyBlocked indicates a block attempt on an already-blocked
	// account.
	ErrAlreadyBlocked = errors.New("account is already blocked")

	// ErrNotBlocked indicates an unblock attempt on an account that is
	// not blocked.
	ErrNotBlocked = errors.New("account is not blocked")

	// ErrSessionNotFound indicates the session has been logged out or
	// never existed.
	ErrSessionNotFound = errors.New("session not found")

	// ErrIssueNotFound indicates the referenced issue does not exist.
	ErrIssueNotFound = errors.New("issue not found")

	// ErrOrderNotFound indicates the referenced order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrItemNotFound indicates the referenced lost/found item does not exist.
	ErrItemNotFound = errors.New("lost/found item not found")

	// ErrRideNotFound indicates the referenced ride does not exist.
	ErrRideNotFound = errors.New("ride not found")

	// ErrRideFull indicates the ride has no available seats.
	ErrRideFull = errors.New("no seats available")

	// ErrAlreadyBooked indicates the passenger already holds a seat on
	// the ride.
	ErrAlreadyBooked = errors.New("ride already booked")

	// ErrOwnRide indicates a driver attempting to book their own ride.
	ErrOwnRide = errors.New("cannot book your own ride")

	// ErrLockContended indicates the per-entity mutation lock could not
	// be acquired within the retry budget.
	ErrLockContended = errors.New("operation is locked by a concurrent request")
)
