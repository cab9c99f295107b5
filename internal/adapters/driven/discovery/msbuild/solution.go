package msbuild

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/srclink/srclink/internal/core/domain"
	"github.com/srclink/srclink/internal/core/ports/driven"
)

// projectLine matches a project entry in a solution file:
//
//	Project("{GUID}") = "Name", "rel\path\Name.csproj", "{GUID}"
var projectLine = regexp.MustCompile(`(?m)^Project\("\{[^}]+\}"\)\s*=\s*"([^"]+)",\s*"([^"]+)",\s*"\{[^}]+\}"`)

// Ensure Discovery implements the interface.
var _ driven.ProjectDiscovery = (*Discovery)(nil)

// Discovery enumerates projects from solution files on disk.
type Discovery struct{}

// NewDiscovery creates a discovery adapter.
func NewDiscovery() *Discovery {
	return &Discovery{}
}

// DiscoverSolutions finds every .sln file under root.
func (d *Discovery) DiscoverSolutions(root string) ([]string, error) {
	var solutions []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(path), ".sln") {
			solutions = append(solutions, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return solutions, nil
}

// Projects parses a solution file and loads each referenced project.
// An explicitly named solution file that does not exist maps to
// domain.ErrSolutionNotFound, which the CLI treats as fatal.
func (d *Discovery) Projects(solutionPath, configuration, platform string) ([]domain.Project, error) {
	raw, err := os.ReadFile(solutionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSolutionNotFound, solutionPath)
		}
		return nil, fmt.Errorf("read solution: %w", err)
	}

	solutionDir := filepath.Dir(solutionPath)

	var projects []domain.Project
	for _, match := range projectLine.FindAllStringSubmatch(string(raw), -1) {
		name, rel := match[1], fromWindows(match[2])

		// Solution folders and non-project entries carry no project file.
		ext := strings.ToLower(filepath.Ext(rel))
		if ext != ".csproj" && ext != ".vbproj" {
			continue
		}

		project, err := loadProject(filepath.Join(solutionDir, rel), name, rel, configuration, platform)
		if err != nil {
			return nil, fmt.Errorf("project %s: %w", name, err)
		}
		projects = append(projects, *project)
	}

	return projects, nil
}

// fromWindows converts solution-file separators to the host's.
func fromWindows(p string) string {
	return filepath.FromSlash(strings.ReplaceAll(p, "\\", "/"))
}
