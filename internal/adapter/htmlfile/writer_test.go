package htmlfile

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write(t *testing.T) {
	logger := slog.Default()

	t.Run("writes document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "map.html")
		w := NewWriter(path, logger)

		require.NoError(t, w.Write([]byte("<html>ok</html>")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", string(got))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "map.html")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

		require.NoError(t, NewWriter(path, logger).Write([]byte("new")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("missing directory fails without leaving the target", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "does", "not", "exist", "map.html")
		err := NewWriter(path, logger).Write([]byte("doc"))

		require.Error(t, err)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "map.html")
		require.NoError(t, NewWriter(path, logger).Write([]byte("doc")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "map.html", entries[0].Name())
	})
}
