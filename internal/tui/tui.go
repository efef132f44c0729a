package tui

import (
	"context"
	"errors"

	"github.com/flightsearch/flightsearch/internal/adapter"
	"github.com/flightsearch/flightsearch/internal/logger"
	"github.com/flightsearch/flightsearch/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	server adapter.ServerAdapter
}

func New(server adapter.ServerAdapter, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server}, nil
}

// LoginFlow runs the menu/login/register screens until the user either
// authenticates or quits. On success the returned payload carries the signed
// session token and the account attributes.
func (t *TUI) LoginFlow(ctx context.Context) (models.AuthResponse, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.server),
		"register": NewRegisterModel(ctx, t.server),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.AuthResponse{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.AuthResponse{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.AuthResponse{}, ErrUserQuit
	}

	return result.resultAuth, nil
}

// MainLoop runs the flight-search screen until the user quits or logs out.
// logout is true when the session must be discarded, either because the user
// asked for it or because the server rejected the token.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.server, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
