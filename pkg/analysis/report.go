package analysis

import (
	"time"

	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

// Status is the verdict for one scanned file.
type Status string

const (
	// StatusComplete means every byte was classified.
	StatusComplete Status = "complete"

	// StatusPartial means the file is JPEG data with some unknown bytes that were
	// not caused by a malformed segment, such as trailing data under the stop policy.
	StatusPartial Status = "partial"

	// StatusTruncated means a malformed segment stopped classification.
	StatusTruncated Status = "truncated"

	// StatusUnrecognized means the file does not start with a JPEG start marker.
	StatusUnrecognized Status = "unrecognized"

	// StatusError means the file could not be read.
	StatusError Status = "error"
)

// IsIssue reports whether the status counts against a scan. Truncated files only
// count when strict is set.
func (s Status) IsIssue(strict bool) bool {
	switch s {
	case StatusError, StatusUnrecognized:
		return true
	case StatusTruncated:
		return strict
	default:
		return false
	}
}

// Report contains pre-computed views of scan results.
// Computed once by Analyze, used by all renderers.
type Report struct {
	// Files holds one entry per scanned file.
	Files []FileAnalysis `json:"files,omitempty"`

	// ByRegion aggregates bytes and runs per region across all files.
	ByRegion []RegionAnalysis `json:"byRegion,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// FileAnalysis describes one scanned file.
type FileAnalysis struct {
	Path         string         `json:"path"`
	Status       Status         `json:"status"`
	Issue        bool           `json:"issue"`
	Size         int64          `json:"size"`
	EndMarkers   int            `json:"endMarkers"`
	UnknownBytes int            `json:"unknownBytes"`
	FirstUnknown int            `json:"firstUnknown"`
	Regions      map[string]int `json:"regions,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// RegionAnalysis aggregates one region across files.
type RegionAnalysis struct {
	Region jpegmap.Region `json:"region"`
	Bytes  int            `json:"bytes"`
	Runs   int            `json:"runs"`
	Files  int            `json:"files"`

	// Share is the fraction of all classified bytes in this region.
	Share float64 `json:"share"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files        int   `json:"filesScanned"`
	Recognized   int   `json:"recognized"`
	Complete     int   `json:"complete"`
	Partial      int   `json:"partial"`
	Truncated    int   `json:"truncated"`
	Unrecognized int   `json:"unrecognized"`
	Errored      int   `json:"errored"`
	Bytes        int64 `json:"bytes"`
	Issues       int   `json:"issues"`
}

// HasIssues returns true if any file counted as an issue.
func (t Totals) HasIssues() bool {
	return t.Issues > 0
}

// HasErrors returns true if any file could not be read.
func (t Totals) HasErrors() bool {
	return t.Errored > 0
}
