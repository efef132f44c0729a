package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/flightsearch/flightsearch/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	user := models.User{UserID: 123, Email: "pilot@example.com"}
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, user, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.UserID != 123 {
		t.Errorf("expected UserID 123, got %d", token.UserID)
	}
	if token.SessionClaims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.SessionClaims.Issuer)
	}
	if token.SessionClaims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.SessionClaims.Subject)
	}
	if token.SessionClaims.Email != user.Email {
		t.Errorf("expected email claim %s, got %s", user.Email, token.SessionClaims.Email)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, models.User{UserID: 1}, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issuer := "flight-search-backend"
	key := "secret-key"
	user := models.User{UserID: 42, Email: "pilot@example.com"}

	issued, err := GenerateJWTToken(issuer, user, time.Hour, key)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if parsed.UserID != user.UserID {
		t.Errorf("expected UserID %d, got %d", user.UserID, parsed.UserID)
	}
	if parsed.SessionClaims.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, parsed.SessionClaims.Email)
	}
}

func TestValidateAndParseJWTToken_Errors(t *testing.T) {
	issuer := "flight-search-backend"
	key := "secret-key"
	user := models.User{UserID: 42, Email: "pilot@example.com"}

	expired, err := GenerateJWTToken(issuer, user, -time.Minute, key)
	if err != nil {
		t.Fatalf("generate expired: %v", err)
	}

	valid, err := GenerateJWTToken(issuer, user, time.Hour, key)
	if err != nil {
		t.Fatalf("generate valid: %v", err)
	}

	// flip a character in the signature segment
	tampered := valid.SignedString[:len(valid.SignedString)-2] + "xx"

	tests := []struct {
		name        string
		tokenString string
		key         string
		issuer      string
	}{
		{"expired token", expired.SignedString, key, issuer},
		{"wrong sign key", valid.SignedString, "another-key", issuer},
		{"wrong issuer", valid.SignedString, key, "someone-else"},
		{"tampered signature", tampered, key, issuer},
		{"garbage input", "not.a.token", key, issuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.tokenString, tt.key, tt.issuer); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid header", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"padded header", "  Bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"missing token", "Bearer", "", true},
		{"wrong scheme", "Basic abc.def.ghi", "", true},
		{"lowercase scheme", "bearer abc.def.ghi", "", true},
		{"extra parts", "Bearer abc def", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseBearerToken_NoTokenLeak(t *testing.T) {
	_, err := ParseBearerToken("Basic super-secret")
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "super-secret") {
		t.Error("error message must not contain the credential")
	}
}
