// Package fs provides file output with atomic update semantics.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes files atomically: content goes to a temporary file in the
// target directory first and is moved into place with a rename, so an
// interrupted run never leaves a truncated output file behind.
type Writer struct {
	perm os.FileMode
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{perm: 0644}
}

// WriteFile writes data to path atomically, creating parent directories as
// needed.
func (w *Writer) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %q: %w", dir, err)
	}

	// The temporary file lives in the target directory so the rename
	// stays on one filesystem.
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %q: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %q: %w", tmpPath, err)
	}

	if err := os.Chmod(tmpPath, w.perm); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("moving output into place: %w", err)
	}

	return nil
}
