// Package jpegmap classifies the bytes of a JPEG file into structural regions.
// It provides:
// - Classify: a pure scan that tags every byte with a Region
// - Layout: the per-byte tag sequence, collapsible into Runs
// - Summary: aggregate statistics over a Layout
package jpegmap

// Layout is the per-byte region map of a buffer. Regions[i] tags byte i.
// A Layout is always derived by Classify and never edited afterwards.
type Layout struct {
	Regions []Region

	// Truncated is true when the scan stopped at a malformed segment.
	Truncated bool
}

// Len returns the number of bytes the layout covers.
// A nil layout covers nothing.
func (l *Layout) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Regions)
}

// RegionAt returns the region of the byte at offset.
// Offsets outside the layout, and every offset of a nil layout, are Unknown.
func (l *Layout) RegionAt(offset int) Region {
	if l == nil || offset < 0 || offset >= len(l.Regions) {
		return Unknown
	}
	return l.Regions[offset]
}

// Run is a maximal span of adjacent bytes sharing one region tag.
type Run struct {
	// Region is the tag shared by every byte in the run.
	Region Region

	// StartOffset is the byte index where the run begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the run ends (exclusive).
	EndOffset int
}

// Len returns the length of the run in bytes.
func (r Run) Len() int {
	return r.EndOffset - r.StartOffset
}

// Contains returns true if the given offset is within this run.
func (r Run) Contains(offset int) bool {
	return offset >= r.StartOffset && offset < r.EndOffset
}

// Runs collapses the layout into maximal runs in offset order.
func (l *Layout) Runs() []Run {
	if l.Len() == 0 {
		return nil
	}

	runs := make([]Run, 0, 16)
	start := 0
	for idx := 1; idx <= len(l.Regions); idx++ {
		if idx < len(l.Regions) && l.Regions[idx] == l.Regions[start] {
			continue
		}
		runs = append(runs, Run{
			Region:      l.Regions[start],
			StartOffset: start,
			EndOffset:   idx,
		})
		start = idx
	}

	return runs
}

// RunAt returns the run containing offset, or false if offset is outside the layout.
func (l *Layout) RunAt(offset int) (Run, bool) {
	if offset < 0 || offset >= l.Len() {
		return Run{}, false
	}

	region := l.Regions[offset]
	start := offset
	for start > 0 && l.Regions[start-1] == region {
		start--
	}
	end := offset + 1
	for end < len(l.Regions) && l.Regions[end] == region {
		end++
	}

	return Run{Region: region, StartOffset: start, EndOffset: end}, true
}

// ValidateRuns checks that a run slice is valid:
// - Runs are contiguous, non-empty, and non-overlapping.
// - Runs cover the full range [0, length).
// - Adjacent runs carry different regions (maximality).
// Returns true if valid, false otherwise.
func ValidateRuns(runs []Run, length int) bool {
	if len(runs) == 0 {
		return length == 0
	}

	if runs[0].StartOffset != 0 {
		return false
	}

	if runs[len(runs)-1].EndOffset != length {
		return false
	}

	for idx, run := range runs {
		if run.Len() <= 0 {
			return false
		}
		if idx == 0 {
			continue
		}
		prev := runs[idx-1]
		if run.StartOffset != prev.EndOffset || run.Region == prev.Region {
			return false
		}
	}

	return true
}
