package server

import "errors"

var errNoServerAddress = errors.New("no HTTP address is configured")
