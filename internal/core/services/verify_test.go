package services

import (
	"crypto/md5" //nolint:gosec // Verification fixture, not crypto.
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srclink/srclink/internal/core/domain"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func md5Hex(content string) string {
	sum := md5.Sum([]byte(content)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

func TestChecksumVerifier_IdenticalFileYieldsNoWarning(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "A.cs", "class A {}")

	symbols := &domain.SymbolFile{Sources: []domain.SourceRef{
		{Path: path, Algorithm: domain.ChecksumMD5, Checksum: md5Hex("class A {}")},
	}}

	warnings := NewChecksumVerifier().Verify([]string{path}, symbols)
	assert.Empty(t, warnings)
}

func TestChecksumVerifier_MismatchYieldsExactlyOneWarning(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "A.cs", "class A { /* edited after build */ }")

	symbols := &domain.SymbolFile{Sources: []domain.SourceRef{
		{Path: path, Algorithm: domain.ChecksumMD5, Checksum: md5Hex("class A {}")},
	}}

	warnings := NewChecksumVerifier().Verify([]string{path}, symbols)
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.WarningChecksumMismatch, warnings[0].Kind)
	assert.Equal(t, path, warnings[0].Path)
}

func TestChecksumVerifier_MissingEntryYieldsWarning(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "A.cs", "class A {}")

	warnings := NewChecksumVerifier().Verify([]string{path}, &domain.SymbolFile{})
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.WarningMissingChecksum, warnings[0].Kind)
}

func TestChecksumVerifier_ExtraTableEntriesNotReported(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "A.cs", "class A {}")

	// Symbol files may reference generated files outside the project.
	symbols := &domain.SymbolFile{Sources: []domain.SourceRef{
		{Path: path, Algorithm: domain.ChecksumMD5, Checksum: md5Hex("class A {}")},
		{Path: filepath.Join(dir, "Generated.g.cs"), Algorithm: domain.ChecksumMD5, Checksum: "deadbeef"},
	}}

	warnings := NewChecksumVerifier().Verify([]string{path}, symbols)
	assert.Empty(t, warnings)
}

func TestChecksumVerifier_AlgorithmPerEntry(t *testing.T) {
	dir := t.TempDir()
	content := "class B {}"
	path := writeSource(t, dir, "B.cs", content)

	sum := sha256.Sum256([]byte(content))
	symbols := &domain.SymbolFile{Sources: []domain.SourceRef{
		{Path: path, Algorithm: domain.ChecksumSHA256, Checksum: hex.EncodeToString(sum[:])},
	}}

	warnings := NewChecksumVerifier().Verify([]string{path}, symbols)
	assert.Empty(t, warnings)
}

func TestChecksumVerifier_UnreadableFileIsMismatch(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.cs")

	symbols := &domain.SymbolFile{Sources: []domain.SourceRef{
		{Path: missing, Algorithm: domain.ChecksumMD5, Checksum: "00"},
	}}

	warnings := NewChecksumVerifier().Verify([]string{missing}, symbols)
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.WarningChecksumMismatch, warnings[0].Kind)
}
