package driven

import "context"

// SymbolIndexer embeds an index document into a symbol file.
// The implementation is a process boundary: it mutates the symbol file in
// place and is opaque to the core. Any error is treated by the engine as a
// terminal per-project failure; the core makes no idempotence assumption.
type SymbolIndexer interface {
	// Index embeds the document at documentPath into the symbol file at
	// symbolFilePath. Blocking, no built-in timeout.
	Index(ctx context.Context, symbolFilePath, documentPath string) error
}
