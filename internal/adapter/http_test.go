package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flightsearch/flightsearch/internal/config"
	"github.com/flightsearch/flightsearch/internal/logger"
	"github.com/flightsearch/flightsearch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		ServerURL:      srv.URL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(raw)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"full url", "http://localhost:4000", "http://localhost:4000", false},
		{"trailing slash trimmed", "http://localhost:4000/", "http://localhost:4000", false},
		{"bare host gets scheme", "localhost:4000", "http://localhost:4000", false},
		{"empty", "", "", true},
		{"scheme only", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPServerAdapter_Register_StoresToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "pilot@example.com", user.Email)

		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			Token: "signed.jwt.token",
			User:  models.User{UserID: 1, Email: user.Email},
		})
	})

	auth, err := a.Register(context.Background(), models.User{Email: "pilot@example.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "signed.jwt.token", auth.Token)
	assert.Equal(t, int64(1), auth.User.UserID)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestHTTPServerAdapter_Register_Conflict(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Message: "Email already registered"})
	})

	_, err := a.Register(context.Background(), models.User{Email: "pilot@example.com", Password: "secret"})
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Email already registered")
	assert.Empty(t, a.Token())
}

func TestHTTPServerAdapter_Login_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		message    string
		wantTarget error
	}{
		{"unknown account", http.StatusNotFound, "Account not found. Please register.", ErrNotFound},
		{"wrong password", http.StatusUnauthorized, "Invalid password", ErrUnauthorized},
		{"server error", http.StatusInternalServerError, "Login failed", ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, models.ErrorResponse{Message: tt.message})
			})

			_, err := a.Login(context.Background(), models.User{Email: "a@b.c", Password: "x"})
			require.ErrorIs(t, err, tt.wantTarget)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestHTTPServerAdapter_PopularStats_SendsBearer(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/flights/stats", r.URL.Path)
		require.Equal(t, "Bearer signed.jwt.token", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, models.StatsResponse{
			Popular: models.PopularStats{
				Callsign: []models.PopularQueryItem{{Type: models.SearchTypeCallsign, Query: "RYR2424", Count: 12}},
			},
		})
	})
	a.SetToken("signed.jwt.token")

	stats, err := a.PopularStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.Callsign, 1)
	assert.Equal(t, "RYR2424", stats.Callsign[0].Query)
}

func TestHTTPServerAdapter_PopularStats_Unauthorized(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Message: "Missing or invalid token"})
	})

	_, err := a.PopularStats(context.Background())
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestHTTPServerAdapter_Search(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/flights/search", r.URL.Path)
		assert.Equal(t, "BA123", r.URL.Query().Get("query"))
		assert.Equal(t, "callsign", r.URL.Query().Get("type"))

		writeJSON(t, w, http.StatusOK, models.SearchResponse{
			OK:   true,
			Type: models.SearchTypeCallsign,
			Data: map[string]any{"flightroute": map[string]any{"callsign": "BA123"}},
		})
	})
	a.SetToken("signed.jwt.token")

	result, err := a.Search(context.Background(), "BA123", models.SearchTypeCallsign)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, models.SearchTypeCallsign, result.Type)
}

func TestHTTPServerAdapter_Search_OmitsEmptyType(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["type"]
		assert.False(t, present, "empty type must not be sent")

		writeJSON(t, w, http.StatusOK, models.SearchResponse{OK: true, Type: models.SearchTypeAircraft})
	})

	_, err := a.Search(context.Background(), "ABC123", "")
	require.NoError(t, err)
}

func TestHTTPServerAdapter_Search_NotFound(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Message: "No data found"})
	})

	_, err := a.Search(context.Background(), "ZZZ999", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPServerAdapter_SetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {})

	a.SetToken("  padded.token  ")
	assert.Equal(t, "padded.token", a.Token())
}
