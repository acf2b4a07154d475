package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/jpglitch/internal/logging"
	"github.com/yaklabco/jpglitch/pkg/config"
	"github.com/yaklabco/jpglitch/pkg/fsutil"
)

// writeResult writes edited content to outPath. Overwriting the input goes
// through fsutil.Save so the file is checked for outside changes and backed
// up first; any other target is written atomically with the input's mode.
func writeResult(ctx context.Context, cfg *config.Config, inPath, outPath string,
	info *fsutil.FileInfo, content []byte,
) error {
	logger := logging.Default()

	if samePath(inPath, outPath) {
		result, err := fsutil.Save(ctx, outPath, content, info, backupConfig(cfg))
		if err != nil {
			return fmt.Errorf("save %s: %w", outPath, err)
		}
		if result.BackedUp {
			logger.Info("backup created",
				logging.FieldBackup, fsutil.BackupPath(outPath, fsutil.BackupMode(cfg.Backups.Mode)))
		}
		logger.Debug("saved", logging.FieldPath, outPath, logging.FieldChanged, result.Written)
		return nil
	}

	mode := fsutil.DefaultFileMode
	if info != nil {
		mode = info.Mode.Perm()
	}
	if err := fsutil.WriteAtomic(ctx, outPath, content, mode); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	logger.Debug("written", logging.FieldOutput, outPath, logging.FieldBytes, len(content))
	return nil
}

// samePath reports whether two paths name the same file after cleaning.
func samePath(left, right string) bool {
	absLeft, errLeft := filepath.Abs(left)
	absRight, errRight := filepath.Abs(right)
	if errLeft != nil || errRight != nil {
		return filepath.Clean(left) == filepath.Clean(right)
	}
	return absLeft == absRight
}
