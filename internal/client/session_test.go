package client

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/flightsearch/flightsearch/models"
)

func newTestSessionStore(t *testing.T) *SessionStore {
	t.Helper()
	return &SessionStore{path: filepath.Join(t.TempDir(), sessionFileName)}
}

func TestSessionStore_RoundTrip(t *testing.T) {
	store := newTestSessionStore(t)

	saved := Session{
		Token: "signed.jwt.token",
		User:  models.User{UserID: 7, Email: "pilot@example.com"},
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Token != saved.Token {
		t.Errorf("expected token %q, got %q", saved.Token, loaded.Token)
	}
	if loaded.User.UserID != 7 || loaded.User.Email != "pilot@example.com" {
		t.Errorf("unexpected user: %+v", loaded.User)
	}
}

func TestSessionStore_LoadMissing(t *testing.T) {
	store := newTestSessionStore(t)

	if _, err := store.Load(); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_LoadCorrupt(t *testing.T) {
	store := newTestSessionStore(t)

	if err := os.WriteFile(store.path, []byte("{garbage"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	if _, err := store.Load(); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for corrupt file, got %v", err)
	}
}

func TestSessionStore_LoadEmptyToken(t *testing.T) {
	store := newTestSessionStore(t)

	if err := store.Save(Session{User: models.User{UserID: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := store.Load(); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for tokenless session, got %v", err)
	}
}

func TestSessionStore_Clear(t *testing.T) {
	store := newTestSessionStore(t)

	if err := store.Save(Session{Token: "t"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected session to be gone, got %v", err)
	}

	// clearing twice is fine
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestSessionStore_FilePermissions(t *testing.T) {
	store := newTestSessionStore(t)

	if err := store.Save(Session{Token: "t"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(store.path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}
}
