package analysis

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts regions by byte count and files by size.
	SortByCount SortField = "count"
	// SortByAlpha sorts regions by name and files by path.
	SortByAlpha SortField = "alpha"
	// SortBySeverity puts files with the most serious status first.
	SortBySeverity SortField = "severity"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeByFile includes the per-file analysis.
	IncludeByFile bool

	// IncludeByRegion includes the per-region aggregation.
	IncludeByRegion bool

	// SortBy specifies how to sort ByRegion and Files. Empty keeps scan order
	// for files and region order for regions.
	SortBy SortField

	// SortDesc sorts in descending order (highest first).
	SortDesc bool

	// Strict counts truncated files as issues.
	Strict bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeByFile:   true,
		IncludeByRegion: true,
		SortBy:          SortByCount,
		SortDesc:        true,
	}
}
