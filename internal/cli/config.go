package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jpglitch/internal/configloader"
	"github.com/yaklabco/jpglitch/internal/logging"
	"github.com/yaklabco/jpglitch/pkg/buffer"
	"github.com/yaklabco/jpglitch/pkg/config"
	"github.com/yaklabco/jpglitch/pkg/fsutil"
	"github.com/yaklabco/jpglitch/pkg/runner"
)

// commandContext returns the command's context, or Background when none was set.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig resolves the configuration for cmd with cliCfg taking precedence
// over files and the environment. It also returns the working directory used
// for discovery.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	logger := logging.Default()

	// The explicit config path comes from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	for _, hint := range loadResult.Hints {
		logger.Debug(hint)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	finalCfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldEndMarker, finalCfg.EndMarker,
		logging.FieldMaxSize, finalCfg.MaxFileSize,
		logging.FieldJobs, finalCfg.Jobs,
		logging.FieldBackup, finalCfg.BackupsActive(),
	)

	return finalCfg, workDir, nil
}

// backupConfig maps resolved configuration onto fsutil backup settings.
func backupConfig(cfg *config.Config) fsutil.BackupConfig {
	mode := fsutil.BackupMode(cfg.Backups.Mode)
	if !mode.IsValid() {
		mode = fsutil.BackupModeSidecar
	}
	return fsutil.BackupConfig{
		Enabled: cfg.BackupsActive(),
		Mode:    mode,
	}
}

// openBuffer reads path under the configured size cap and loads it into a new buffer.
func openBuffer(ctx context.Context, cfg *config.Config, path string) (*buffer.Buffer, *fsutil.FileInfo, error) {
	data, info, err := fsutil.ReadFile(ctx, path, cfg.MaxFileSize)
	if err != nil {
		return nil, nil, err
	}

	buf := buffer.New(buffer.Options{Classify: runner.ClassifyOptions(cfg)})
	buf.Load(data, path)

	logging.Default().Debug("file loaded",
		logging.FieldPath, path,
		logging.FieldBytes, len(data),
		logging.FieldRecognized, buf.Current().Recognized(),
	)

	return buf, info, nil
}
