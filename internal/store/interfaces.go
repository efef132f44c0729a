package store

import (
	"context"

	"github.com/flightsearch/flightsearch/models"
)

// UserRepository is the credential store: it owns the users table and is the
// only component allowed to touch it.
type UserRepository interface {
	// CreateUser persists a new account with an already-hashed password and
	// returns the stored record with server-assigned fields populated.
	// A duplicate email yields ErrEmailAlreadyExists; the uniqueness check
	// happens inside the database so concurrent registrations cannot race.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under email, or
	// ErrNoUserWasFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}
