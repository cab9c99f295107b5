package cli

import (
	"errors"

	"github.com/srclink/srclink/internal/core/domain"
)

// ErrLinkFailed signals that one or more projects failed to link.
// Fatal pre-loop conditions carry their own codes; everything else is
// generic failure.
var ErrLinkFailed = errors.New("one or more projects failed to link")

// Process exit codes.
const (
	ExitOK               = 0
	ExitLinkFailed       = 1
	ExitNoProvider       = 2
	ExitSolutionNotFound = 3
)

// ExitCode maps an Execute error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrNoProvider):
		return ExitNoProvider
	case errors.Is(err, domain.ErrSolutionNotFound):
		return ExitSolutionNotFound
	default:
		return ExitLinkFailed
	}
}
