// Package fsutil provides the file handling jpglitch needs around the edit buffer:
// size-capped reads with change tracking, atomic writes, and sidecar backups.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// DefaultMaxSize caps how much of a file is loaded into memory.
// Every edit copies the whole buffer and reclassifies it.
const DefaultMaxSize int64 = 32 << 20

// Sentinel errors for callers using errors.Is.
var (
	ErrNilFileInfo        = errors.New("nil FileInfo")
	ErrNotFound           = errors.New("file not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrIsDirectory        = errors.New("path is a directory")
	ErrTooLarge           = errors.New("file exceeds size limit")
	ErrModifiedExternally = errors.New("file changed on disk since it was read")
)

// FileInfo records what a file looked like when it was read.
type FileInfo struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64
	Hash    [sha256.Size]byte
}

// ReadFile loads path after checking it is a regular file no larger than maxSize.
// A maxSize of zero or less disables the limit.
func ReadFile(ctx context.Context, path string, maxSize int64) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classifyPathError(path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if maxSize > 0 && stat.Size() > maxSize {
		return nil, nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrTooLarge, path, stat.Size(), maxSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classifyPathError(path, err)
	}

	return content, newFileInfo(path, stat, content), nil
}

// CheckModified reports whether the file described by info has changed. A missing
// file counts as changed. Size and mtime are compared first; when they match the
// content hash decides.
func CheckModified(ctx context.Context, info *FileInfo) (bool, error) {
	if info == nil {
		return false, ErrNilFileInfo
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}

	stat, err := os.Stat(info.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", info.Path, err)
	}

	if stat.Size() != info.Size || !stat.ModTime().Equal(info.ModTime) {
		return true, nil
	}

	content, err := os.ReadFile(info.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", info.Path, err)
	}

	return sha256.Sum256(content) != info.Hash, nil
}

func newFileInfo(path string, stat fs.FileInfo, content []byte) *FileInfo {
	return &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}
}

func classifyPathError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("access %s: %w", path, err)
	}
}
