package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoQuery indicates the command was invoked without any query terms.
	ErrNoQuery = errors.New("no query given")

	// Pipeline Errors.

	// ErrFetch indicates the results page could not be retrieved.
	// Covers network, DNS, timeout and non-success status failures.
	ErrFetch = errors.New("fetch failed")

	// ErrParse indicates the results page could not be parsed as markup.
	ErrParse = errors.New("parse failed")

	// Terminal Errors.

	// ErrNotTerminal indicates an interactive session was requested
	// on a file descriptor that is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")
)
