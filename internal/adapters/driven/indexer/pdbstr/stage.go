package pdbstr

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

// Locate finds the pdbstr executable: the explicit path when given,
// otherwise a PATH lookup.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("indexer executable: %w", err)
		}
		return explicit, nil
	}

	found, err := exec.LookPath("pdbstr")
	if err != nil {
		return "", fmt.Errorf("indexer executable not found in PATH: %w", err)
	}
	return found, nil
}

// Stage copies the indexer executable into a fresh uuid-named temporary
// directory and returns the staged path together with a cleanup function.
// The directory is removed by cleanup on every exit path: success,
// per-project failure or fatal error.
//
// Staging keeps the run independent of the tool's install location being
// writable or locked by a concurrent build.
func Stage(executable string) (staged string, cleanup func(), err error) {
	dir := filepath.Join(os.TempDir(), "srclink-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", nil, fmt.Errorf("create staging dir: %w", err)
	}
	cleanup = func() { os.RemoveAll(dir) }

	staged = filepath.Join(dir, filepath.Base(executable))
	if err := copyFile(executable, staged); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("stage indexer: %w", err)
	}

	return staged, cleanup, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o700)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
