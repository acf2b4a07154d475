// Package navigate builds region jump indexes from classified layouts.
package navigate

import (
	"slices"

	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

// DefaultJumpable returns the regions retained for navigation when none are given:
// the marker and header kinds, not scan data or unclassified bytes.
func DefaultJumpable() []jpegmap.Region {
	return []jpegmap.Region{
		jpegmap.StartMarker,
		jpegmap.ApplicationSegment,
		jpegmap.QuantizationTable,
		jpegmap.FrameHeader,
		jpegmap.HuffmanTable,
		jpegmap.RestartInterval,
		jpegmap.ScanHeader,
		jpegmap.RestartMarker,
		jpegmap.Comment,
		jpegmap.EndMarker,
	}
}

// Index maps each jumpable region to the sorted start offsets of its runs.
// An Index is a snapshot of one layout; rebuild it after the layout changes.
type Index struct {
	starts map[jpegmap.Region][]int
}

// NewIndex collapses layout into runs and records the start offset of every run
// whose region is jumpable. With no jumpable regions given, DefaultJumpable is used.
// A nil layout yields an empty index.
func NewIndex(layout *jpegmap.Layout, jumpable ...jpegmap.Region) *Index {
	if len(jumpable) == 0 {
		jumpable = DefaultJumpable()
	}

	keep := make(map[jpegmap.Region]bool, len(jumpable))
	for _, region := range jumpable {
		keep[region] = true
	}

	idx := &Index{starts: make(map[jpegmap.Region][]int)}
	for _, run := range layout.Runs() {
		if keep[run.Region] {
			idx.starts[run.Region] = append(idx.starts[run.Region], run.StartOffset)
		}
	}

	return idx
}

// Count returns the number of runs recorded for region.
func (idx *Index) Count(region jpegmap.Region) int {
	return len(idx.starts[region])
}

// Offsets returns a copy of the run start offsets for region in ascending order.
func (idx *Index) Offsets(region jpegmap.Region) []int {
	return slices.Clone(idx.starts[region])
}

// Regions returns the regions that have at least one run, in tag order.
func (idx *Index) Regions() []jpegmap.Region {
	var regions []jpegmap.Region
	for _, region := range jpegmap.AllRegions() {
		if len(idx.starts[region]) > 0 {
			regions = append(regions, region)
		}
	}
	return regions
}

// FindNext returns the first run start of region strictly after from, wrapping to
// the first run. With a single run it is returned whatever from is. The boolean is
// false when region has no runs.
func (idx *Index) FindNext(region jpegmap.Region, from int) (int, bool) {
	starts := idx.starts[region]
	if len(starts) == 0 {
		return 0, false
	}

	pos, found := slices.BinarySearch(starts, from)
	if found {
		pos++
	}
	if pos >= len(starts) {
		return starts[0], true
	}
	return starts[pos], true
}

// FindPrevious returns the last run start of region strictly before from, wrapping
// to the last run. With a single run it is returned whatever from is. The boolean
// is false when region has no runs.
func (idx *Index) FindPrevious(region jpegmap.Region, from int) (int, bool) {
	starts := idx.starts[region]
	if len(starts) == 0 {
		return 0, false
	}

	pos, _ := slices.BinarySearch(starts, from)
	if pos == 0 {
		return starts[len(starts)-1], true
	}
	return starts[pos-1], true
}
