package services

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/srclink/srclink/internal/core/domain"
	"github.com/srclink/srclink/internal/core/ports/driven"
	"github.com/srclink/srclink/internal/core/ports/driving"
	"github.com/srclink/srclink/internal/logger"
)

// DocumentSuffix is appended to the symbol file name to form the index
// document name written beside it.
const DocumentSuffix = ".srcsrv"

// Ensure LinkEngine implements the interface.
var _ driving.Linker = (*LinkEngine)(nil)

// LinkEngine orchestrates source indexing per project and aggregates
// results. One project's failure is isolated at the project boundary and
// never aborts the remaining projects.
type LinkEngine struct {
	reader   driven.SymbolReader
	indexer  driven.SymbolIndexer
	verifier *ChecksumVerifier
	writer   *IndexWriter
	log      *logger.Log
}

// NewLinkEngine creates a link engine.
func NewLinkEngine(reader driven.SymbolReader, indexer driven.SymbolIndexer, log *logger.Log) *LinkEngine {
	return &LinkEngine{
		reader:   reader,
		indexer:  indexer,
		verifier: NewChecksumVerifier(),
		writer:   NewIndexWriter(),
		log:      log,
	}
}

// Run links every project in order against the run-wide revision stamp.
func (e *LinkEngine) Run(
	ctx context.Context,
	projects []domain.Project,
	stamp domain.RevisionStamp,
	provider driven.RevisionProvider,
	opts driving.RunOptions,
) *domain.RunResult {
	result := &domain.RunResult{}

	// The raw content base is provider-wide; resolve it once.
	rawBase, baseErr := provider.RawContentBase(opts.RepoRoot)
	template := RawURLTemplate(rawBase)

	for i := range projects {
		project := &projects[i]

		// 1. Ignore patterns mark the project skipped, outside the
		// success/failure count.
		if matchesAny(project.Name, opts.IgnorePatterns) {
			e.log.Info("%s (skipped)", project.Name)
			result.Skipped = append(result.Skipped, domain.LinkResult{Project: project, Status: domain.LinkSkipped})
			continue
		}

		e.log.Info("%s", project.Name)
		done := e.log.Indent()

		var res domain.LinkResult
		if baseErr != nil {
			res = domain.LinkResult{Project: project, Status: domain.LinkFailed, Err: fmt.Errorf("raw content base: %w", baseErr)}
		} else {
			res = e.linkOne(ctx, project, stamp, template, opts)
		}

		switch res.Status {
		case domain.LinkSucceeded:
			result.Succeeded = append(result.Succeeded, res)
		case domain.LinkFailed:
			e.log.Error("%v", res.Err)
			result.Failed = append(result.Failed, res)
		case domain.LinkSkipped:
			result.Skipped = append(result.Skipped, res)
		}

		done()
	}

	return result
}

// linkOne processes a single project. Errors and panics below this boundary
// are converted into a failed LinkResult; nothing propagates past it.
func (e *LinkEngine) linkOne(
	ctx context.Context,
	project *domain.Project,
	stamp domain.RevisionStamp,
	template string,
	opts driving.RunOptions,
) (result domain.LinkResult) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.LinkResult{
				Project: project,
				Status:  domain.LinkFailed,
				Err:     fmt.Errorf("link %s: panic: %v", project.Name, r),
			}
		}
	}()

	// 2. Resolve the symbol-file path: override directory + symbol file
	// name when supplied, else the project's own computed output path.
	// The path is deliberately not checked for containment under the
	// solution root; out-of-tree output paths are valid.
	symbolPath := project.SymbolFilePath
	if opts.SymbolOutputDir != "" {
		symbolPath = filepath.Join(opts.SymbolOutputDir, project.SymbolFileName())
	}

	// 3. A missing symbol file fails this project only.
	if _, err := os.Stat(symbolPath); err != nil {
		return domain.LinkResult{
			Project: project,
			Status:  domain.LinkFailed,
			Err:     fmt.Errorf("%w: %s", domain.ErrMissingSymbolFile, symbolPath),
		}
	}

	// 4. Verify checksums. Warnings only; they never fail the project.
	symbols, err := e.reader.ReadSourceTable(ctx, symbolPath)
	if err != nil {
		return domain.LinkResult{
			Project: project,
			Status:  domain.LinkFailed,
			Err:     fmt.Errorf("read source table: %w", err),
		}
	}
	warnings := e.verifier.Verify(project.SourceFiles, symbols)
	for _, w := range warnings {
		e.log.Warn("%s: %s", w.Kind, w.Path)
	}

	// 5. Build the path mapping for every compiled file.
	mapping := domain.NewPathMapping()
	for _, src := range project.SourceFiles {
		rel := domain.RepositoryRelative(opts.SolutionRoot, src)
		if prev, replaced := mapping.Set(src, rel); replaced {
			// Last write wins; surfaced so upstream aliasing is visible.
			e.log.Warn("duplicate compiled path %s: %s replaces %s", src, rel, prev)
		}
	}

	// 6. Write the index document beside the symbol file.
	document := e.writer.Write(mapping, stamp, template)
	documentPath := symbolPath + DocumentSuffix
	if err := os.WriteFile(documentPath, document, 0o644); err != nil {
		return domain.LinkResult{
			Project: project,
			Status:  domain.LinkFailed,
			Err:     fmt.Errorf("write index document: %w", err),
		}
	}

	// 7. Hand the symbol file to the external indexer. Any non-success
	// signal is terminal for this project.
	if err := e.indexer.Index(ctx, symbolPath, documentPath); err != nil {
		return domain.LinkResult{
			Project: project,
			Status:  domain.LinkFailed,
			Err:     fmt.Errorf("%w: %v", domain.ErrIndexerFailed, err),
		}
	}

	e.log.Debug("indexed %s (%d files)", symbolPath, mapping.Len())
	return domain.LinkResult{
		Project:  project,
		Status:   domain.LinkSucceeded,
		Warnings: warnings,
	}
}

// matchesAny reports whether name matches any ignore pattern.
// Patterns use path.Match syntax; a malformed pattern matches nothing.
func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if p == name {
			return true
		}
		if ok, err := path.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}
