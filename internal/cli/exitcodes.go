package cli

import (
	"errors"

	"github.com/yaklabco/jpglitch/pkg/runner"
)

// ErrIssuesFound is returned when a scan finds files that need attention.
// It only signals a non-zero exit; the report has already been written.
var ErrIssuesFound = errors.New("issues found")

// Exit codes for jpglitch.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitScanErrors indicates a scan hit files that could not be read or recognized.
	ExitScanErrors = 1

	// ExitScanTruncated indicates truncated files were found in strict mode.
	ExitScanTruncated = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasIssues(false) {
		return ExitScanErrors
	}

	if result.HasIssues(strict) {
		return ExitScanTruncated
	}

	return ExitSuccess
}
