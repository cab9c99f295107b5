// Package domain defines the core entities for srclink.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Project: A build project with its compiled sources and symbol file
//   - SourceRef: A (path, checksum) pair recorded inside a symbol file
//   - PathMapping: Compiled absolute path -> repository-relative path
//   - RevisionStamp: Immutable identifier of the source-tree state
//   - LinkResult: Per-project outcome of a link run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
