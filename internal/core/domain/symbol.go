package domain

import "strings"

// ChecksumAlgorithm identifies the hash algorithm a symbol file recorded
// for one source entry. The symbol format declares the algorithm per entry,
// so a single table may mix algorithms.
type ChecksumAlgorithm string

// Checksum algorithms seen in symbol files.
const (
	ChecksumMD5    ChecksumAlgorithm = "md5"
	ChecksumSHA1   ChecksumAlgorithm = "sha1"
	ChecksumSHA256 ChecksumAlgorithm = "sha256"
)

// SourceRef is one (recorded source path, recorded checksum) entry
// extracted from a symbol file.
type SourceRef struct {
	// Path is the source path as recorded at compile time.
	Path string

	// Algorithm is the hash algorithm the entry declares.
	Algorithm ChecksumAlgorithm

	// Checksum is the lowercase hex digest recorded for the file.
	Checksum string
}

// SymbolFile is a compiler-produced debug-information file together with
// its extracted source table. The core reads it for verification; only the
// external indexer ever mutates it.
type SymbolFile struct {
	// Path is the absolute path of the symbol file on disk.
	Path string

	// Sources is the extracted table of recorded source references.
	Sources []SourceRef
}

// Lookup finds the recorded entry for a compiled path.
// Symbol files come from case-insensitive filesystems, so the comparison
// folds case.
func (s *SymbolFile) Lookup(compiledPath string) (SourceRef, bool) {
	for _, ref := range s.Sources {
		if strings.EqualFold(ref.Path, compiledPath) {
			return ref, true
		}
	}
	return SourceRef{}, false
}
