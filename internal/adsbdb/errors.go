package adsbdb

import "errors"

var (
	// ErrUpstreamUnavailable is returned for every transport failure and
	// every non-2xx upstream response. Nothing is retried.
	ErrUpstreamUnavailable = errors.New("upstream aviation API unavailable")

	// ErrUnknownRecord is returned when the provider answers with its
	// "unknown ..." string payload, meaning no data exists for the query.
	ErrUnknownRecord = errors.New("upstream has no record for this query")
)
