package service

import (
	"context"

	"github.com/flightsearch/flightsearch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_services.go -package=mock

// AuthService handles user registration, credential verification and the
// session token lifecycle.
type AuthService interface {
	// Register creates a new account. The password is hashed before it
	// reaches the repository; plaintext is never stored or logged.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates an existing account and returns the stored user
	// record on success.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns the decoded
	// session claims. Verification is stateless: signature and expiry only,
	// no storage round-trip.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// FlightsService is the domain core: it normalises upstream stats into typed
// popular-query lists behind a bounded cache, and resolves free-text search
// queries to the matching provider lookup.
type FlightsService interface {
	// PopularStats returns the current popular-query snapshot, fetching
	// and normalising upstream data when the cached one has expired.
	PopularStats(ctx context.Context) (models.PopularStats, error)

	// Search resolves query to a provider lookup. explicitType selects the
	// lookup kind; when empty the kind is auto-detected from the query's
	// shape.
	Search(ctx context.Context, query string, explicitType string) (models.SearchResult, error)
}
