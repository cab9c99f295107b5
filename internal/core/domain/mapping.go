package domain

import (
	"path/filepath"
	"strings"
)

// PathMapping maps compiled absolute paths to repository-relative,
// URL-safe paths. Keys are unique; setting an existing key replaces its
// value (last write wins) while preserving the original insertion position.
type PathMapping struct {
	keys    []string
	entries map[string]string
}

// NewPathMapping creates an empty mapping.
func NewPathMapping() *PathMapping {
	return &PathMapping{entries: make(map[string]string)}
}

// Set records a mapping entry. If the key already exists, the previous
// value is returned with replaced=true so callers can surface the collision.
func (m *PathMapping) Set(localPath, repositoryPath string) (previous string, replaced bool) {
	if prev, ok := m.entries[localPath]; ok {
		m.entries[localPath] = repositoryPath
		return prev, true
	}
	m.keys = append(m.keys, localPath)
	m.entries[localPath] = repositoryPath
	return "", false
}

// Get returns the repository-relative path for a local path.
func (m *PathMapping) Get(localPath string) (string, bool) {
	v, ok := m.entries[localPath]
	return v, ok
}

// Len returns the number of entries.
func (m *PathMapping) Len() int {
	return len(m.keys)
}

// Walk visits entries in insertion order.
func (m *PathMapping) Walk(fn func(localPath, repositoryPath string)) {
	for _, k := range m.keys {
		fn(k, m.entries[k])
	}
}

// RepositoryRelative derives the repository-relative form of a compiled
// path under the solution root: the root prefix is stripped, separators are
// normalised to forward slashes, and no leading slash remains.
func RepositoryRelative(solutionRoot, compiledPath string) string {
	rel := strings.TrimPrefix(compiledPath, solutionRoot)
	rel = filepath.ToSlash(rel)
	// Windows paths arrive with backslashes even on non-Windows test hosts.
	rel = strings.ReplaceAll(rel, "\\", "/")
	return strings.TrimLeft(rel, "/")
}
