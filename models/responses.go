package models

// AuthResponse is the body returned by the register and login endpoints.
// The token is the signed session JWT; the user echoes the public account
// attributes so the client can persist both together.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// StatsResponse wraps the popular-query snapshot returned by the stats
// endpoint.
type StatsResponse struct {
	Popular PopularStats `json:"popular"`
}

// SearchResponse is the body returned by the search endpoint on success.
type SearchResponse struct {
	OK   bool       `json:"ok"`
	Type SearchType `json:"type"`
	Data any        `json:"data"`
}

// ErrorResponse is the uniform JSON failure body. Handlers convert every
// error into this shape; internals never leak to the client.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of the unauthenticated service status probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
