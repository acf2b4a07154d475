package fsutil

import (
	"context"
	"fmt"
	"os"
)

// SaveResult describes a completed Save.
type SaveResult struct {
	// Written is false when the file already held the content.
	Written bool

	// BackedUp is true when a new backup was created.
	BackedUp bool

	// Info describes the file after the save. Use it as the baseline for the next Save.
	Info *FileInfo
}

// Save writes content over path for an editor session. When original is not nil
// the file must still match it, otherwise ErrModifiedExternally is returned and
// nothing is written. A backup is made before the first overwrite according to
// backups. The original file mode is kept.
func Save(ctx context.Context, path string, content []byte, original *FileInfo, backups BackupConfig) (SaveResult, error) {
	var result SaveResult

	mode := DefaultFileMode
	if original != nil {
		changed, err := CheckModified(ctx, original)
		if err != nil {
			return result, err
		}
		if changed {
			return result, fmt.Errorf("%w: %s", ErrModifiedExternally, path)
		}
		mode = original.Mode.Perm()
	}

	backedUp, err := CreateBackup(ctx, path, backups)
	if err != nil {
		return result, err
	}
	result.BackedUp = backedUp

	written, err := WriteAtomicIfChanged(ctx, path, content, mode)
	if err != nil {
		return result, err
	}
	result.Written = written

	stat, err := os.Stat(path)
	if err != nil {
		return result, fmt.Errorf("stat %s: %w", path, err)
	}
	result.Info = newFileInfo(path, stat, content)

	return result, nil
}
