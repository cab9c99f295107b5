package pdbstr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "pdbstr.exe")
	require.NoError(t, os.WriteFile(exe, []byte("bin"), 0o755))

	got, err := Locate(exe)
	require.NoError(t, err)
	assert.Equal(t, exe, got)
}

func TestLocate_ExplicitPathMissing(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "absent.exe"))
	assert.Error(t, err)
}

func TestStage_CopiesAndCleansUp(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "pdbstr.exe")
	require.NoError(t, os.WriteFile(exe, []byte("binary payload"), 0o755))

	staged, cleanup, err := Stage(exe)
	require.NoError(t, err)

	content, err := os.ReadFile(staged)
	require.NoError(t, err)
	assert.Equal(t, "binary payload", string(content))
	assert.Equal(t, "pdbstr.exe", filepath.Base(staged))

	// The staging dir must be unique per run and gone after cleanup.
	stagingDir := filepath.Dir(staged)
	assert.Contains(t, filepath.Base(stagingDir), "srclink-")

	cleanup()
	_, err = os.Stat(stagingDir)
	assert.True(t, os.IsNotExist(err))
}

func TestStage_MissingSourceCleansUp(t *testing.T) {
	_, _, err := Stage(filepath.Join(t.TempDir(), "absent.exe"))
	assert.Error(t, err)
}
