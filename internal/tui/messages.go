package tui

import "github.com/flightsearch/flightsearch/models"

// NavigateTo switches the active page of [RootModel]. Payload, if non-nil,
// is delivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes an async login command.
type LoginResult struct {
	Err   error
	Email string
	Auth  models.AuthResponse
}

// RegisterResult finishes an async registration command.
type RegisterResult struct {
	Err   error
	Email string
	Auth  models.AuthResponse
}

// RegisterSuccessNotice is shown on the menu after a completed registration.
type RegisterSuccessNotice struct {
	Email string
}

type statsLoadedMsg struct {
	stats models.PopularStats
	err   error
}

type searchDoneMsg struct {
	result models.SearchResponse
	err    error
}

type copiedMsg struct {
	err error
}
