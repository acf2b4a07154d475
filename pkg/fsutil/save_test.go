package fsutil_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jpglitch/pkg/fsutil"
)

func TestSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeFile(t, t.TempDir(), "a.jpg", soiEOI)

	_, info, err := fsutil.ReadFile(ctx, path, 0)
	require.NoError(t, err)

	edited := []byte{0xFF, 0xD8, 0x00, 0xFF, 0xD9}
	result, err := fsutil.Save(ctx, path, edited, info, fsutil.DefaultBackupConfig())
	require.NoError(t, err)
	assert.True(t, result.Written)
	assert.True(t, result.BackedUp)
	require.NotNil(t, result.Info)

	backup, err := os.ReadFile(fsutil.BackupPath(path, fsutil.BackupModeSidecar))
	require.NoError(t, err)
	assert.Equal(t, soiEOI, backup)

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())

	// Saving again from the returned baseline succeeds and keeps the first backup.
	result, err = fsutil.Save(ctx, path, edited, result.Info, fsutil.DefaultBackupConfig())
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.False(t, result.BackedUp)
}

func TestSave_DetectsExternalChange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeFile(t, t.TempDir(), "a.jpg", soiEOI)

	_, info, err := fsutil.ReadFile(ctx, path, 0)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x02, 0x03, 0x04, 0x05}, 0o600))

	_, err = fsutil.Save(ctx, path, []byte{0xFF}, info, fsutil.DefaultBackupConfig())
	require.ErrorIs(t, err, fsutil.ErrModifiedExternally)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05}, got)
	assert.False(t, fsutil.BackupExists(path, fsutil.BackupModeSidecar))
}

func TestSave_NewFile(t *testing.T) {
	t.Parallel()

	path := t.TempDir() + "/new.jpg"

	result, err := fsutil.Save(context.Background(), path, soiEOI, nil, fsutil.DefaultBackupConfig())
	require.NoError(t, err)
	assert.True(t, result.Written)
	assert.False(t, result.BackedUp)
}
