// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Reference defaults, matching the original deployment of the service.
const (
	DefaultServiceName   = "flight-search-backend"
	DefaultHTTPAddress   = ":4000"
	DefaultTokenSignKey  = "change-me"
	DefaultTokenDuration = time.Hour
	DefaultDatabaseDSN   = "./data/app.db"
	DefaultUpstreamURL   = "https://api.adsbdb.com/v0"
	DefaultUpstreamWait  = 10 * time.Second
	DefaultStatsCacheTTL = 5 * time.Minute
)

// validate fills zero-valued fields of the final merged [StructuredConfig]
// with the reference defaults and checks the remaining invariants. Every
// field has a working default, so a bare environment still boots.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ServiceName == "" {
		cfg.App.ServiceName = DefaultServiceName
	}
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = DefaultTokenSignKey
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = cfg.App.ServiceName
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDatabaseDSN
	}

	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = DefaultUpstreamURL
	}
	if cfg.Upstream.Timeout <= 0 {
		cfg.Upstream.Timeout = DefaultUpstreamWait
	}

	if cfg.Flights.StatsCacheTTL <= 0 {
		cfg.Flights.StatsCacheTTL = DefaultStatsCacheTTL
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" {
		cfg.Adapter.ServerURL = "http://localhost:4000"
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}

	return nil
}
