package adsbdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flightsearch/flightsearch/internal/config"
	"github.com/flightsearch/flightsearch/internal/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cli := NewClient(config.Upstream{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, logger.NewLogger("test"))

	return cli, srv
}

func TestClient_Callsign_Success(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/callsign/BA123" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":{"flightroute":{"callsign":"BA123"}}}`))
	})

	raw, err := cli.Callsign(context.Background(), "BA123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"flightroute":{"callsign":"BA123"}}` {
		t.Errorf("unexpected payload: %s", raw)
	}
}

func TestClient_Callsign_UnknownSentinel(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"unknown callsign"}`))
	})

	_, err := cli.Callsign(context.Background(), "ZZZ999")
	if !errors.Is(err, ErrUnknownRecord) {
		t.Fatalf("expected ErrUnknownRecord, got %v", err)
	}
}

func TestClient_Aircraft_Non2xx(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "teapot", http.StatusTeapot)
	})

	_, err := cli.Aircraft(context.Background(), "ABC123")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestClient_Airline_BadJSON(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	})

	_, err := cli.Airline(context.Background(), "BAW")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestClient_Stats_Success(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":{"daily":{"callsign":[{"url":"/v0/callsign/RYR2424","count":12}],"aircraft":[],"airline":null}}}`))
	})

	stats, err := cli.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats.Daily.Callsign) != 1 {
		t.Fatalf("expected 1 callsign entry, got %d", len(stats.Daily.Callsign))
	}
	if stats.Daily.Callsign[0].URL != "/v0/callsign/RYR2424" || stats.Daily.Callsign[0].Count != 12 {
		t.Errorf("unexpected entry: %+v", stats.Daily.Callsign[0])
	}
}

func TestClient_ServerDown(t *testing.T) {
	cli, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := cli.Stats(context.Background())
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestClient_CallsignPathEscaping(t *testing.T) {
	var gotPath string
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"response":{}}`))
	})

	if _, err := cli.Callsign(context.Background(), "BA 123/x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/callsign/BA%20123%2Fx" {
		t.Errorf("query was not percent-encoded into the path: %s", gotPath)
	}
}
