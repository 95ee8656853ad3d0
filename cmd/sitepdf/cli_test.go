package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePDFPath(t *testing.T) {
	t.Parallel()

	t.Run("appends pdf extension when missing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		got, err := resolvePDFPath(filepath.Join(dir, "manual"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "manual.pdf"), got)
	})

	t.Run("keeps existing extension regardless of case", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		got, err := resolvePDFPath(filepath.Join(dir, "manual.PDF"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "manual.PDF"), got)
	})

	t.Run("resolves relative paths against the working directory", func(t *testing.T) {
		got, err := resolvePDFPath("manual")
		require.NoError(t, err)

		cwd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, "manual.pdf"), got)
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "nested", "deep", "manual.pdf")

		got, err := resolvePDFPath(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
		assert.DirExists(t, filepath.Dir(path))
	})

	t.Run("rejects empty path", func(t *testing.T) {
		t.Parallel()

		_, err := resolvePDFPath("")
		require.Error(t, err)
	})
}
