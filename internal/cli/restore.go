package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jpglitch/internal/logging"
	"github.com/yaklabco/jpglitch/pkg/config"
	"github.com/yaklabco/jpglitch/pkg/fsutil"
)

// ErrNoBackup is returned when restore finds no backup for the file.
var ErrNoBackup = errors.New("no backup found")

type restoreFlags struct {
	keep bool
}

func newRestoreCommand() *cobra.Command {
	flags := &restoreFlags{}

	cmd := &cobra.Command{
		Use:   "restore FILE",
		Short: "Put back the original of a file changed in place",
		Long: `Copy the backup made before FILE was first overwritten back over FILE.

glitch, find --replace and edit keep a backup of the original next to the file
(FILE.jpglitch.bak) the first time they overwrite it. restore undoes every
change made since then and removes the backup unless --keep-backup is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.keep, "keep-backup", false, "leave the backup in place after restoring")

	return cmd
}

func runRestore(cmd *cobra.Command, path string, flags *restoreFlags) error {
	cfg, _, err := loadConfig(cmd, &config.Config{})
	if err != nil {
		return err
	}

	mode := backupConfig(cfg).Mode
	backupPath := fsutil.BackupPath(path, mode)

	if !fsutil.BackupExists(path, mode) {
		return fmt.Errorf("%w: %s", ErrNoBackup, path)
	}

	if _, err := fsutil.RestoreBackup(commandContext(cmd), path, mode); err != nil {
		return err
	}

	if !flags.keep {
		if _, err := fsutil.RemoveBackup(path, mode); err != nil {
			return err
		}
	}

	logging.Default().Info("restored",
		logging.FieldPath, path,
		logging.FieldBackup, backupPath,
	)
	return nil
}
