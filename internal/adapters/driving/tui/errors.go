package tui

import "errors"

// ErrMissingResultActionService is returned when the result action service is not provided.
var ErrMissingResultActionService = errors.New("tui: result action service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
