// Package srctool extracts the recorded source table from a symbol file by
// running the SourceServer dump tool at a process boundary. The core never
// parses the symbol container itself.
//
// The tool is invoked as `<executable> <symbolFile>` and prints one line
// per recorded source entry:
//
//	<algorithm>:<hex digest>\t<recorded source path>
//
// Blank lines and lines starting with '#' are ignored.
package srctool

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/srclink/srclink/internal/core/domain"
	"github.com/srclink/srclink/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.SymbolReader = (*Reader)(nil)

// Reader runs the dump tool against symbol files.
type Reader struct {
	executable string
}

// NewReader creates a reader using the dump tool at executable.
func NewReader(executable string) *Reader {
	return &Reader{executable: executable}
}

// ReadSourceTable runs the dump tool and parses its output.
func (r *Reader) ReadSourceTable(ctx context.Context, path string) (*domain.SymbolFile, error) {
	cmd := exec.CommandContext(ctx, r.executable, path)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("run %s: %w: %s", r.executable, err, strings.TrimSpace(stderr.String()))
	}

	symbols := &domain.SymbolFile{Path: path}

	scanner := bufio.NewScanner(&stdout)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ref, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("parse source table of %s: %w", path, err)
		}
		symbols.Sources = append(symbols.Sources, ref)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dump output: %w", err)
	}

	return symbols, nil
}

// parseLine parses one `algo:hex<TAB>path` entry.
func parseLine(line string) (domain.SourceRef, error) {
	checksum, path, ok := strings.Cut(line, "\t")
	if !ok {
		return domain.SourceRef{}, fmt.Errorf("%w: malformed entry %q", domain.ErrInvalidInput, line)
	}

	algo, digest, ok := strings.Cut(checksum, ":")
	if !ok {
		// No declared algorithm: older symbol files record bare MD5 digests.
		algo, digest = string(domain.ChecksumMD5), checksum
	}

	return domain.SourceRef{
		Path:      path,
		Algorithm: domain.ChecksumAlgorithm(strings.ToLower(algo)),
		Checksum:  strings.ToLower(digest),
	}, nil
}
