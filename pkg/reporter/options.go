package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/jpglitch/pkg/analysis"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// RegionColors overrides region colors by region name.
	RegionColors map[string]string

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Verbose lists complete files in text output too.
	Verbose bool

	// Compact uses minified JSON.
	Compact bool

	// Strict counts truncated files as issues.
	Strict bool

	// SortBy orders files and regions. Empty keeps scan order.
	SortBy analysis.SortField

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowSummary: true,
	}
}
