package domain

import "path/filepath"

// Project is one build project discovered from a solution.
// Produced by discovery and treated as immutable for the rest of the run.
type Project struct {
	// Name is the project name as it appears in the solution.
	Name string

	// RelativePath is the project file path relative to the solution root.
	RelativePath string

	// SourceFiles holds the absolute paths of the compiled source files,
	// in project order.
	SourceFiles []string

	// SymbolFilePath is the expected symbol-file output path for the
	// selected configuration and platform.
	SymbolFilePath string

	// Configuration is the build configuration used to pick outputs (e.g. Release).
	Configuration string

	// Platform is the build platform used to pick outputs (e.g. AnyCPU).
	Platform string
}

// SymbolFileName returns the file name component of the symbol file path.
// Used when an output directory override redirects where symbols live.
func (p *Project) SymbolFileName() string {
	return filepath.Base(p.SymbolFilePath)
}
