package driven

import (
	"context"

	"github.com/srclink/srclink/internal/core/domain"
)

// SymbolReader extracts the recorded source table from a symbol file.
// The core never parses the symbol container itself.
type SymbolReader interface {
	// ReadSourceTable reads the (source path, checksum) table recorded in
	// the symbol file at path.
	ReadSourceTable(ctx context.Context, path string) (*domain.SymbolFile, error)
}
