package config

import (
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the flightsearch backend base URL the client talks to.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level configuration of the terminal client.
// The client deliberately reads only environment variables: it is a
// user-facing tool and must not compete with the server for the flag set.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig assembles and validates the terminal client configuration.
//
// Env:
//
//	FLIGHTSEARCH_SERVER_URL     backend base URL (default http://localhost:4000)
//	FLIGHTSEARCH_CLIENT_TIMEOUT outbound request timeout (default 15s)
func GetClientConfig() (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL: os.Getenv("FLIGHTSEARCH_SERVER_URL"),
		},
	}

	if raw := os.Getenv("FLIGHTSEARCH_CLIENT_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, ErrInvalidAdapterConfigs
		}
		clientCfg.Adapter.RequestTimeout = timeout
	}

	return clientCfg, clientCfg.validate()
}
