// Package adsbdb is the HTTP client for the adsbdb aviation-data API.
//
// It exposes the four read-only lookups the service proxies (stats,
// callsign, aircraft, airline) and normalises every transport-level or
// non-2xx failure into a single [ErrUpstreamUnavailable] condition, so
// callers never distinguish upstream error subtypes. The provider signals
// "no such record" with a string payload instead of a status code; the
// client translates that sentinel into [ErrUnknownRecord] right here at the
// boundary, so no other layer inspects string prefixes.
package adsbdb
