package services

import (
	"crypto/md5"  //nolint:gosec // Symbol files record MD5 checksums; this is verification, not crypto.
	"crypto/sha1" //nolint:gosec // Same: the algorithm is dictated by the symbol format.
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"os"
	"strings"

	"github.com/srclink/srclink/internal/core/domain"
)

// ChecksumVerifier compares on-disk file hashes against a symbol file's
// recorded source table. Verification is advisory: findings are warnings
// and never block subsequent steps.
type ChecksumVerifier struct{}

// NewChecksumVerifier creates a verifier.
func NewChecksumVerifier() *ChecksumVerifier {
	return &ChecksumVerifier{}
}

// Verify checks each compiled path against the recorded table.
// A compiled path absent from the table yields a missing-checksum warning;
// a differing on-disk hash yields a mismatch warning. Table entries with no
// corresponding compiled path are not reported (symbol files may reference
// generated files outside the project).
func (v *ChecksumVerifier) Verify(compiledPaths []string, symbols *domain.SymbolFile) []domain.VerificationWarning {
	var warnings []domain.VerificationWarning

	for _, compiled := range compiledPaths {
		ref, ok := symbols.Lookup(compiled)
		if !ok {
			warnings = append(warnings, domain.VerificationWarning{
				Kind: domain.WarningMissingChecksum,
				Path: compiled,
			})
			continue
		}

		digest, err := hashFile(compiled, ref.Algorithm)
		if err != nil {
			// Unreadable file: report as a mismatch, the recorded content
			// can no longer be confirmed.
			warnings = append(warnings, domain.VerificationWarning{
				Kind: domain.WarningChecksumMismatch,
				Path: compiled,
			})
			continue
		}

		if !strings.EqualFold(digest, ref.Checksum) {
			warnings = append(warnings, domain.VerificationWarning{
				Kind: domain.WarningChecksumMismatch,
				Path: compiled,
			})
		}
	}

	return warnings
}

// hashFile hashes the file content with the algorithm the symbol entry
// declares and returns the lowercase hex digest.
func hashFile(path string, algorithm domain.ChecksumAlgorithm) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var h hash.Hash
	switch algorithm {
	case domain.ChecksumSHA256:
		h = sha256.New()
	case domain.ChecksumSHA1:
		h = sha1.New() //nolint:gosec // Per-entry algorithm from the symbol format.
	case domain.ChecksumMD5:
		h = md5.New() //nolint:gosec // Per-entry algorithm from the symbol format.
	default:
		// Older symbol files default to MD5 when no algorithm is declared.
		h = md5.New() //nolint:gosec
	}

	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
