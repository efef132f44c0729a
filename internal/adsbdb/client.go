package adsbdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/flightsearch/flightsearch/internal/config"
	"github.com/flightsearch/flightsearch/internal/logger"
)

//go:generate mockgen -source=client.go -destination=../mock/adsbdb_client_mock.go -package=mock

// Client is the read-only contract against the aviation-data provider.
// Implementations perform no retries and no caching; the popular-stats cache
// lives in the flights service.
type Client interface {
	// Stats fetches the provider's daily popular-lookup counters.
	Stats(ctx context.Context) (Stats, error)

	// Callsign resolves a flight callsign to its route payload.
	Callsign(ctx context.Context, query string) (json.RawMessage, error)

	// Aircraft resolves a registration or ICAO hex code to an airframe
	// payload.
	Aircraft(ctx context.Context, query string) (json.RawMessage, error)

	// Airline resolves an IATA/ICAO airline code to an airline payload.
	Airline(ctx context.Context, query string) (json.RawMessage, error)
}

type client struct {
	http   *resty.Client
	logger *logger.Logger
}

// NewClient constructs a provider client for the configured base URL. Each
// call is bounded by cfg.Timeout (connect and response included).
func NewClient(cfg config.Upstream, log *logger.Logger) Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &client{http: cli, logger: log}
}

func (c *client) Stats(ctx context.Context) (Stats, error) {
	raw, err := c.get(ctx, "/stats", "")
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return Stats{}, fmt.Errorf("%w: decoding stats payload: %w", ErrUpstreamUnavailable, err)
	}

	return stats, nil
}

func (c *client) Callsign(ctx context.Context, query string) (json.RawMessage, error) {
	return c.get(ctx, "/callsign/{query}", query)
}

func (c *client) Aircraft(ctx context.Context, query string) (json.RawMessage, error) {
	return c.get(ctx, "/aircraft/{query}", query)
}

func (c *client) Airline(ctx context.Context, query string) (json.RawMessage, error) {
	return c.get(ctx, "/airline/{query}", query)
}

// get performs one parameterised GET and unwraps the provider envelope.
// The query value is percent-encoded into the path by resty's path params.
func (c *client) get(ctx context.Context, path, query string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	req := c.http.R().SetContext(ctx)
	if query != "" {
		req.SetPathParam("query", query)
	}

	resp, err := req.Get(path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("upstream request failed")
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if !resp.IsSuccess() {
		log.Error().Str("path", path).Int("status", resp.StatusCode()).Msg("upstream returned non-2xx")
		return nil, fmt.Errorf("%w: http %d", ErrUpstreamUnavailable, resp.StatusCode())
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		log.Err(err).Str("path", path).Msg("upstream payload is not valid JSON")
		return nil, fmt.Errorf("%w: decoding payload: %w", ErrUpstreamUnavailable, err)
	}

	// The provider reports a miss as a string payload like
	// "unknown callsign" instead of a 404.
	var sentinel string
	if err := json.Unmarshal(env.Response, &sentinel); err == nil && strings.HasPrefix(sentinel, "unknown") {
		return nil, ErrUnknownRecord
	}

	return env.Response, nil
}
