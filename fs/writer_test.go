package fs_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/figdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("writes content and creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "out.json")

		err := fs.WriteFile(path, 0644, func(w io.Writer) error {
			_, err := io.WriteString(w, `{"ok":true}`)
			return err
		})

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, string(content))
	})

	t.Run("keeps existing file when write fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.json")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		err := fs.WriteFile(path, 0644, func(w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return errors.New("format failed")
		})

		require.Error(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "old", string(content))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file should be removed")
	})

	t.Run("applies permissions", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")

		require.NoError(t, fs.WriteFile(path, 0600, func(w io.Writer) error { return nil }))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})
}
