package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jpglitch/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates file with default mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.jpg")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, soiEOI, 0))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, soiEOI, got)

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, stat.Mode().Perm())
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "out.jpg", []byte{1})
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, soiEOI, 0o600))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.jpg")
		require.Error(t, fsutil.WriteAtomic(context.Background(), path, soiEOI, 0))
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "out.jpg")

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, soiEOI, 0)
	require.NoError(t, err)
	assert.True(t, written, "new file")

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, soiEOI, 0)
	require.NoError(t, err)
	assert.False(t, written, "same content")

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte{0xFF, 0xD8}, 0)
	require.NoError(t, err)
	assert.True(t, written, "different content")
}
