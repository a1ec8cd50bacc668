package library

import "errors"

// Lookup and registration errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("identifier already registered")
)

// Circulation rule errors. These are expected business outcomes; the System
// returns them unwrapped or wrapped with fmt.Errorf("%w: ...") and callers
// match with errors.Is.
var (
	ErrItemUnavailable   = errors.New("item is not available")
	ErrBorrowingLimit    = errors.New("borrowing limit reached")
	ErrFinesOutstanding  = errors.New("outstanding fines exceed the threshold")
	ErrRenewalLimit      = errors.New("maximum renewals reached")
	ErrAlreadyReturned   = errors.New("loan is already returned")
	ErrOverdueRenewal    = errors.New("overdue loans cannot be renewed")
	ErrHasActiveLoans    = errors.New("open loans reference this record")
	ErrUserSuspended     = errors.New("user is suspended")
	ErrMembershipExpired = errors.New("membership has expired")
)

// Construction-time validation errors.
var (
	ErrInvalidID       = errors.New("identifier must not be empty")
	ErrInvalidTitle    = errors.New("title must not be empty")
	ErrInvalidName     = errors.New("name must not be empty")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidKind     = errors.New("unknown item kind")
	ErrInvalidRole     = errors.New("unknown user role")
	ErrInvalidPosition = errors.New("unknown staff position")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidRating   = errors.New("unknown age rating")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidPages    = errors.New("pages must not be negative")
)
