package runner

import "github.com/yaklabco/jpglitch/pkg/jpegmap"

// FileOutcome is the classification result for one file.
type FileOutcome struct {
	// Path is the absolute path that was scanned.
	Path string

	// Size is the file size in bytes.
	Size int64

	// Summary describes the classified layout. Unset when Error is non-nil.
	Summary jpegmap.Summary

	// Error is set if the file could not be read.
	Error error
}

// Recognized reports whether the file started with a JPEG start marker.
func (o FileOutcome) Recognized() bool {
	return o.Error == nil && o.Summary.Recognized
}

// Truncated reports whether classification stopped on a malformed segment.
func (o FileOutcome) Truncated() bool {
	return o.Error == nil && o.Summary.Truncated
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesScanned is the number of files read and classified.
	FilesScanned int

	// FilesRecognized counts files that start with a JPEG start marker.
	FilesRecognized int

	// FilesComplete counts recognized files with no unknown bytes.
	FilesComplete int

	// FilesTruncated counts recognized files whose scan hit a malformed segment.
	FilesTruncated int

	// FilesUnrecognized counts files that are not JPEG data.
	FilesUnrecognized int

	// FilesErrored counts files that could not be read.
	FilesErrored int

	// BytesScanned is the total size of all scanned files.
	BytesScanned int64

	// BytesByRegion totals classified bytes per region across all files.
	BytesByRegion map[jpegmap.Region]int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered file, ordered by path.
	Files []FileOutcome

	// Stats aggregates the outcomes.
	Stats Stats
}

// HasFailures reports whether any file could not be read.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasIssues reports whether any file was unreadable or not JPEG data. With strict
// set, truncated files count as well.
func (r *Result) HasIssues(strict bool) bool {
	if r == nil {
		return false
	}
	if r.Stats.FilesErrored > 0 || r.Stats.FilesUnrecognized > 0 {
		return true
	}
	return strict && r.Stats.FilesTruncated > 0
}

func newStats() Stats {
	return Stats{
		BytesByRegion: make(map[jpegmap.Region]int),
	}
}

// accumulate appends an outcome and folds it into the stats.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesScanned++
	r.Stats.BytesScanned += outcome.Size

	if !outcome.Summary.Recognized {
		r.Stats.FilesUnrecognized++
		return
	}

	r.Stats.FilesRecognized++
	if outcome.Summary.Truncated {
		r.Stats.FilesTruncated++
	}
	if outcome.Summary.Complete {
		r.Stats.FilesComplete++
	}

	for region, count := range outcome.Summary.Bytes {
		r.Stats.BytesByRegion[region] += count
	}
}
