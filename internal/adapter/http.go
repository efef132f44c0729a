package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/flightsearch/flightsearch/internal/config"
	"github.com/flightsearch/flightsearch/internal/logger"
	"github.com/flightsearch/flightsearch/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL and configures the underlying client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register and decodes the auth payload from the response
// body. On success the returned token is stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	auth, err := decodeAuthResponse(resp)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// Login implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/login and decodes the auth payload from the response body.
// On success the returned token is stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	auth, err := decodeAuthResponse(resp)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// PopularStats implements [ServerAdapter]. It fetches the popular-query
// snapshot from GET /api/flights/stats using the stored bearer token.
func (h *httpServerAdapter) PopularStats(ctx context.Context) (models.PopularStats, error) {
	resp, err := h.authedRequest(ctx).Get("/api/flights/stats")
	if err != nil {
		return models.PopularStats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PopularStats{}, err
	}

	var body models.StatsResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.PopularStats{}, fmt.Errorf("decode stats response: %w", err)
	}

	return body.Popular, nil
}

// Search implements [ServerAdapter]. It queries GET /api/flights/search with
// the stored bearer token. searchType is optional; when empty the server
// infers it from the query shape.
func (h *httpServerAdapter) Search(ctx context.Context, query string, searchType models.SearchType) (models.SearchResponse, error) {
	req := h.authedRequest(ctx).SetQueryParam("query", query)
	if searchType != "" {
		req.SetQueryParam("type", string(searchType))
	}

	resp, err := req.Get("/api/flights/search")
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResponse{}, err
	}

	var body models.SearchResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.SearchResponse{}, fmt.Errorf("decode search response: %w", err)
	}

	return body, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeAuthResponse(resp *resty.Response) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode auth response: %w", err)
	}
	if auth.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("auth response has no token")
	}
	return auth, nil
}
