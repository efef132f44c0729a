package models

import "encoding/json"

// SearchType identifies which upstream lookup a query is routed to.
type SearchType string

const (
	SearchTypeCallsign SearchType = "callsign"
	SearchTypeAircraft SearchType = "aircraft"
	SearchTypeAirline  SearchType = "airline"
)

// Valid reports whether t is one of the three recognized search types.
func (t SearchType) Valid() bool {
	switch t {
	case SearchTypeCallsign, SearchTypeAircraft, SearchTypeAirline:
		return true
	}
	return false
}

// PopularQueryItem is a frequently requested lookup surfaced to let users
// pick a common search without typing. Derived from upstream stats on each
// cache miss, never persisted.
type PopularQueryItem struct {
	Type  SearchType `json:"type"`
	Query string     `json:"query"`
	Count int64      `json:"count"`
}

// PopularStats groups popular queries by search type. All authenticated
// users observe the same snapshot for the lifetime of a cache entry.
type PopularStats struct {
	Callsign []PopularQueryItem `json:"callsign"`
	Aircraft []PopularQueryItem `json:"aircraft"`
	Airline  []PopularQueryItem `json:"airline"`
}

// SearchResult is the outcome of a single flight-data lookup. Data carries
// the provider-shaped payload unchanged; the service never caches it.
type SearchResult struct {
	Type SearchType      `json:"type"`
	Data json.RawMessage `json:"data"`
}
