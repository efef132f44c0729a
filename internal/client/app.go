package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/flightsearch/flightsearch/internal/adapter"
	"github.com/flightsearch/flightsearch/internal/logger"
	"github.com/flightsearch/flightsearch/internal/tui"
	"github.com/flightsearch/flightsearch/models"
)

type App struct {
	server  adapter.ServerAdapter
	ui      *tui.TUI
	session *SessionStore

	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	session, err := NewSessionStore()
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}

	return &App{
		server:  server,
		ui:      ui,
		session: session,
		logger:  logger,
	}, nil
}

// Run drives the client lifecycle: restore the saved session or run the
// login flow, then hand control to the search screen. A logout, whether
// user-initiated or forced by a rejected token, discards the session and
// starts over.
func (a *App) Run() error {
	ctx := context.Background()

	var user models.User

	session, err := a.session.Load()
	switch {
	case err == nil:
		a.server.SetToken(session.Token)
		user = session.User
	case errors.Is(err, ErrSessionNotFound):
		auth, loginErr := a.ui.LoginFlow(ctx)
		if loginErr != nil {
			if errors.Is(loginErr, tui.ErrUserQuit) {
				return nil
			}
			return loginErr
		}

		user = auth.User
		if saveErr := a.session.Save(Session{Token: auth.Token, User: auth.User}); saveErr != nil {
			a.logger.Warn().Err(saveErr).Msg("session not saved")
		}
	default:
		return fmt.Errorf("restore session: %w", err)
	}

	logout, err := a.ui.MainLoop(ctx, user)
	if err != nil {
		return err
	}
	if logout {
		a.server.SetToken("")
		if clearErr := a.session.Clear(); clearErr != nil {
			a.logger.Warn().Err(clearErr).Msg("session not cleared")
		}
		return a.Run()
	}

	return nil
}
