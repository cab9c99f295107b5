package driven

import (
	"context"

	"github.com/srclink/srclink/internal/core/domain"
)

// RevisionProvider resolves the revision stamp and raw-content URL base
// for one repository host. Each host type (github, self-hosted raw server,
// etc.) implements this interface.
//
// The engine resolves the revision exactly once per run and treats the
// result as a run-wide constant.
type RevisionProvider interface {
	// Name returns the provider identifier (e.g. "github").
	Name() string

	// ResolveRevision resolves the current revision stamp for the
	// repository rooted at repoRoot.
	ResolveRevision(ctx context.Context, repoRoot string) (domain.RevisionStamp, error)

	// RawContentBase returns the base URL under which raw file content is
	// served, without a trailing slash. The engine appends the revision
	// and per-file placeholders to form the raw URL template.
	RawContentBase(repoRoot string) (string, error)
}
