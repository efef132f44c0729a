package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flightsearch/flightsearch/models"
)

const sessionFileName = ".flightsearch-session.json"

var ErrSessionNotFound = errors.New("saved session not found")

// Session is the durable login state persisted between client runs. It keeps
// the signed bearer token together with the account it belongs to, so the
// user does not retype credentials on every start.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// SessionStore reads and writes the session file. The file lives next to the
// client executable, making the client self-contained and relocatable.
type SessionStore struct {
	path string
}

func NewSessionStore() (*SessionStore, error) {
	executable, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable path: %w", err)
	}

	return &SessionStore{
		path: filepath.Join(filepath.Dir(executable), sessionFileName),
	}, nil
}

// Load reads the saved session. Returns [ErrSessionNotFound] when no session
// file exists or when the file cannot be decoded; a corrupt file is treated
// the same as a missing one so the user simply logs in again.
func (s *SessionStore) Load() (Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, fmt.Errorf("read session file: %w", err)
	}

	var session Session
	if err = json.Unmarshal(raw, &session); err != nil || session.Token == "" {
		return Session{}, ErrSessionNotFound
	}

	return session, nil
}

// Save persists the session with owner-only permissions: the token grants
// full account access.
func (s *SessionStore) Save(session Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear removes the session file. A missing file is not an error.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
