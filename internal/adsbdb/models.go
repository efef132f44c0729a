package adsbdb

import "encoding/json"

// envelope is the wire shape of every adsbdb response body.
type envelope struct {
	Response json.RawMessage `json:"response"`
}

// StatsEntry is one popular-lookup counter inside the daily stats payload.
// URL is a provider-relative reference like "/v0/callsign/RYR2424"; Count is
// how often the lookup was requested.
type StatsEntry struct {
	URL   string `json:"url"`
	Count int64  `json:"count"`
}

// DailyStats groups the provider's daily counters by lookup kind. Absent
// categories decode as nil slices and are treated as empty.
type DailyStats struct {
	Callsign []StatsEntry `json:"callsign"`
	Aircraft []StatsEntry `json:"aircraft"`
	Airline  []StatsEntry `json:"airline"`
}

// Stats is the decoded payload of the provider's /stats operation.
type Stats struct {
	Daily DailyStats `json:"daily"`
}

// UnknownCallsignURL is the sentinel reference the provider emits for
// lookups it could not attribute. Entries carrying it are noise and are
// filtered out of popular-query lists.
const UnknownCallsignURL = "/v0/callsign/unknown"
