package identity

import "context"

// UserStore is the authoritative registry of identities. Implementations
// guard username uniqueness themselves so the create-if-absent check is
// atomic with respect to concurrent registrations.
type UserStore interface {
	// Create appends a new user. Returns sentinel.ErrAlreadyUsed when the
	// username is taken (case-sensitive exact match).
	Create(ctx context.Context, user User) error
	// FindByUsername returns the record for an exact username match, or
	// sentinel.ErrNotFound.
	FindByUsername(ctx context.Context, username string) (User, error)
}
