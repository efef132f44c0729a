// Package adapter provides the transport layer the terminal client uses to
// talk to the flightsearch backend.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// application from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/flightsearch/flightsearch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// flightsearch backend. Implementations are responsible for serialisation,
// bearer-token management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called after a
	// successful Register or Login, or when restoring a saved session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the provided credentials. On
	// success it stores the returned bearer token via SetToken and returns
	// the full auth payload. Returns [ErrConflict] (wrapped) if the email is
	// already taken.
	Register(ctx context.Context, user models.User) (models.AuthResponse, error)

	// Login authenticates an existing account. On success it stores the
	// returned bearer token via SetToken and returns the full auth payload.
	// Returns [ErrNotFound] (wrapped) for an unknown email and
	// [ErrUnauthorized] (wrapped) for a wrong password.
	Login(ctx context.Context, user models.User) (models.AuthResponse, error)

	// PopularStats fetches the aggregated popular-query snapshot. Requires a
	// stored bearer token; returns [ErrUnauthorized] (wrapped) when the
	// session is missing or expired.
	PopularStats(ctx context.Context) (models.PopularStats, error)

	// Search looks up a flight, aircraft, or airline. searchType may be empty
	// to let the server pick one from the query shape. Returns [ErrNotFound]
	// (wrapped) when the upstream has no record for the query.
	Search(ctx context.Context, query string, searchType models.SearchType) (models.SearchResponse, error)
}
