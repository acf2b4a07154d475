package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jpglitch/internal/logging"
	"github.com/yaklabco/jpglitch/pkg/analysis"
	"github.com/yaklabco/jpglitch/pkg/config"
	"github.com/yaklabco/jpglitch/pkg/reporter"
	"github.com/yaklabco/jpglitch/pkg/runner"
)

type scanFlags struct {
	format  string
	ignore  []string
	include []string
	sortBy  string
	strict  bool
	verbose bool
	compact bool
	follow  bool
}

func newScanCommand() *cobra.Command {
	var cfg config.Config
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Check many JPEG files for damage",
		Long:  scanLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, &cfg, flags)
		},
	}

	addScanFlags(cmd, &cfg, flags)

	return cmd
}

const scanLongDescription = `Classify JPEG files and report which are complete, partial, truncated, or
not JPEG at all.

By default, scans all .jpg, .jpeg, .jfif and .jpe files in the current
directory and subdirectories. Specify paths to scan specific files or
directories. The command exits non-zero when a file cannot be read or is not
a JPEG file, and with --strict also when a file is truncated.

Examples:
  jpglitch scan                      # Scan current directory
  jpglitch scan glitched/            # Scan one directory
  jpglitch scan --format table       # Per-file table
  jpglitch scan --format json        # Output as JSON for CI
  jpglitch scan --strict             # Fail on truncated files`

func runScan(cmd *cobra.Command, args []string, cfg *config.Config, flags *scanFlags) error {
	logger := logging.Default()

	// Only set values that were explicitly provided via CLI flags.
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore
	cfg.Strict = flags.strict

	finalCfg, workDir, err := loadConfig(cmd, cfg)
	if err != nil {
		return err
	}

	scanRunner := runner.New(finalCfg)

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     runner.DefaultExtensions(),
		IncludeGlobs:   flags.include,
		ExcludeGlobs:   finalCfg.Ignore,
		FollowSymlinks: flags.follow,
		Jobs:           finalCfg.Jobs,
	}

	logger.Debug("starting scan",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := scanRunner.Run(commandContext(cmd), runOpts)
	if err != nil {
		return errors.Join(errors.New("scan failed"), err)
	}

	logger.Debug("scan finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesScanned, result.Stats.FilesScanned,
		logging.FieldUnrecognized, result.Stats.FilesUnrecognized,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	sortBy := analysis.SortField(flags.sortBy)
	if sortBy != "" && !sortBy.IsValid() {
		return fmt.Errorf("invalid sort field %q: must be count, alpha or severity", flags.sortBy)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		Format:       format,
		Color:        colorMode,
		RegionColors: finalCfg.Colors,
		ShowSummary:  true,
		Verbose:      flags.verbose,
		Compact:      flags.compact,
		Strict:       finalCfg.Strict,
		SortBy:       sortBy,
		WorkingDir:   workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(commandContext(cmd), result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result, finalCfg.Strict) != ExitSuccess {
		return ErrIssuesFound
	}

	return nil
}

func addScanFlags(cmd *cobra.Command, cfg *config.Config, flags *scanFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "only scan files matching these globs")
	cmd.Flags().StringVar(&flags.sortBy, "sort", "", "order results: count, alpha, severity (default: scan order)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat truncated files as failures")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list complete files too (text format)")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVar(&flags.follow, "follow-symlinks", false, "descend into symlinked directories")
	cmd.Flags().StringVar(&cfg.EndMarker, "end-marker", "", "after an end marker: continue or stop")
}
