// Package pdbstr invokes the pdbstr tool to embed an index document into a
// symbol file's srcsrv stream. The invocation is opaque to the core: the
// tool mutates the symbol file in place and a non-zero exit is the
// per-project failure signal.
package pdbstr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/srclink/srclink/internal/core/ports/driven"
)

// StreamName is the symbol-file stream the index document is written to.
const StreamName = "srcsrv"

// Ensure Indexer implements the interface.
var _ driven.SymbolIndexer = (*Indexer)(nil)

// Indexer runs pdbstr against symbol files.
type Indexer struct {
	executable string
}

// NewIndexer creates an indexer using the pdbstr binary at executable.
func NewIndexer(executable string) *Indexer {
	return &Indexer{executable: executable}
}

// Index writes the document into the symbol file's srcsrv stream:
//
//	pdbstr -w -p:<symbolFile> -i:<document> -s:srcsrv
//
// Blocking, no built-in timeout; cancellation comes from ctx.
func (i *Indexer) Index(ctx context.Context, symbolFilePath, documentPath string) error {
	cmd := exec.CommandContext(ctx, i.executable,
		"-w",
		"-p:"+symbolFilePath,
		"-i:"+documentPath,
		"-s:"+StreamName,
	)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(output.String())
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", i.executable, err, msg)
		}
		return fmt.Errorf("%s: %w", i.executable, err)
	}

	return nil
}
