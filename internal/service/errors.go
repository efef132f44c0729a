package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required input field is
	// empty or missing.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the supplied password does not
	// match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed is returned when signing a session token
	// fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every token validation failure
	// (bad signature, expiry, malformed claims) so callers need not inspect
	// low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrUnsupportedSearchType is returned when an explicitly requested
	// search type is not one of callsign, aircraft or airline.
	ErrUnsupportedSearchType = errors.New("unsupported search type")

	// ErrNoDataFound is returned when the upstream provider has no record
	// for the query.
	ErrNoDataFound = errors.New("no data found")
)
