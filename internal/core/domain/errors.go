package domain

import "errors"

// Domain errors represent link-run failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoProvider indicates no registered provider matches the target host.
	// This is fatal: the run aborts before any project is processed.
	ErrNoProvider = errors.New("no provider matches target host")

	// ErrSolutionNotFound indicates an explicitly named solution file does not exist.
	// This is fatal: the run aborts before any project is processed.
	ErrSolutionNotFound = errors.New("solution file not found")

	// ErrMissingSymbolFile indicates a project's symbol file does not exist.
	// This is a per-project failure, never fatal to the run.
	ErrMissingSymbolFile = errors.New("symbol file not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexerFailed indicates the external indexer reported a non-success signal.
	ErrIndexerFailed = errors.New("external indexer failed")
)
