package driving

import (
	"context"

	"github.com/srclink/srclink/internal/core/domain"
	"github.com/srclink/srclink/internal/core/ports/driven"
)

// Linker orchestrates source indexing across a set of projects.
type Linker interface {
	// Run links every non-ignored project against the given revision stamp
	// and provider. One project's failure never aborts the others.
	Run(ctx context.Context, projects []domain.Project, stamp domain.RevisionStamp, provider driven.RevisionProvider, opts RunOptions) *domain.RunResult
}

// RunOptions carries the per-run inputs of a link run.
type RunOptions struct {
	// SolutionRoot is the directory all repository-relative paths are
	// derived against.
	SolutionRoot string

	// RepoRoot is the repository root handed to the provider. Usually the
	// solution root; kept separate for repos whose solution lives in a
	// subdirectory.
	RepoRoot string

	// SymbolOutputDir, when non-empty, overrides where symbol files are
	// looked up: override dir + the project's own symbol file name.
	SymbolOutputDir string

	// IgnorePatterns holds project-name patterns to skip (path.Match syntax).
	IgnorePatterns []string
}
