package driven

import "github.com/srclink/srclink/internal/core/domain"

// ProjectDiscovery enumerates build projects from solution files.
// Implemented by the msbuild adapter; the core only consumes the result.
type ProjectDiscovery interface {
	// DiscoverSolutions finds every solution file under root.
	DiscoverSolutions(root string) ([]string, error)

	// Projects parses a solution file and returns its projects with
	// compiled sources and symbol output paths for the selected
	// configuration and platform.
	Projects(solutionPath, configuration, platform string) ([]domain.Project, error)
}
