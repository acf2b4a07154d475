// Package analysis turns scan results into report views shared by every renderer.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/jpglitch/pkg/jpegmap"
	"github.com/yaklabco/jpglitch/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// StatusOf derives the verdict for one outcome.
func StatusOf(outcome runner.FileOutcome) Status {
	switch {
	case outcome.Error != nil:
		return StatusError
	case !outcome.Summary.Recognized:
		return StatusUnrecognized
	case outcome.Summary.Truncated:
		return StatusTruncated
	case !outcome.Summary.Complete:
		return StatusPartial
	default:
		return StatusComplete
	}
}

// statusRank orders statuses from most to least serious.
func statusRank(status Status) int {
	switch status {
	case StatusError:
		return 0
	case StatusUnrecognized:
		return 1
	case StatusTruncated:
		return 2
	case StatusPartial:
		return 3
	default:
		return 4
	}
}

func analyzeFile(outcome runner.FileOutcome, opts Options) FileAnalysis {
	status := StatusOf(outcome)

	fa := FileAnalysis{
		Path:         makeRelativePath(outcome.Path, opts.WorkingDir),
		Status:       status,
		Issue:        status.IsIssue(opts.Strict),
		Size:         outcome.Size,
		FirstUnknown: -1,
	}

	if outcome.Error != nil {
		fa.Error = outcome.Error.Error()
		return fa
	}

	summary := outcome.Summary
	fa.EndMarkers = summary.EndMarkers
	fa.UnknownBytes = summary.Bytes[jpegmap.Unknown]
	fa.FirstUnknown = summary.FirstUnknown

	if summary.Recognized {
		fa.Regions = make(map[string]int, len(summary.Bytes))
		for region, count := range summary.Bytes {
			fa.Regions[region.String()] = count
		}
	}

	return fa
}

func (t *Totals) add(fa FileAnalysis) {
	t.Files++
	t.Bytes += fa.Size

	switch fa.Status {
	case StatusError:
		t.Errored++
	case StatusUnrecognized:
		t.Unrecognized++
	case StatusTruncated:
		t.Recognized++
		t.Truncated++
	case StatusPartial:
		t.Recognized++
		t.Partial++
	case StatusComplete:
		t.Recognized++
		t.Complete++
	}

	if fa.Issue {
		t.Issues++
	}
}

func buildByRegion(result *runner.Result, opts Options) []RegionAnalysis {
	byRegion := make(map[jpegmap.Region]*RegionAnalysis)
	var total int

	for _, outcome := range result.Files {
		if outcome.Error != nil || !outcome.Summary.Recognized {
			continue
		}
		for region, count := range outcome.Summary.Bytes {
			if count == 0 {
				continue
			}
			ra, ok := byRegion[region]
			if !ok {
				ra = &RegionAnalysis{Region: region}
				byRegion[region] = ra
			}
			ra.Bytes += count
			ra.Runs += outcome.Summary.Runs[region]
			ra.Files++
			total += count
		}
	}

	regions := make([]RegionAnalysis, 0, len(byRegion))
	for _, region := range jpegmap.AllRegions() {
		ra, ok := byRegion[region]
		if !ok {
			continue
		}
		if total > 0 {
			ra.Share = float64(ra.Bytes) / float64(total)
		}
		regions = append(regions, *ra)
	}

	sortRegionAnalysis(regions, opts.SortBy, opts.SortDesc)

	return regions
}

// Analyze transforms a runner.Result into a Report in a single pass over the outcomes.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	files := make([]FileAnalysis, 0, len(result.Files))
	for _, outcome := range result.Files {
		fa := analyzeFile(outcome, opts)
		report.Totals.add(fa)
		files = append(files, fa)
	}

	if opts.IncludeByFile {
		sortFileAnalysis(files, opts.SortBy, opts.SortDesc)
		report.Files = files
	}
	if opts.IncludeByRegion {
		report.ByRegion = buildByRegion(result, opts)
	}

	return report
}

func sortRegionAnalysis(regions []RegionAnalysis, sortBy SortField, desc bool) {
	slices.SortStableFunc(regions, func(left, right RegionAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Region.String(), right.Region.String())
		case SortByCount:
			result := cmp.Compare(left.Bytes, right.Bytes)
			if desc {
				result = -result
			}
			return result
		default:
			return 0
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortStableFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Path, right.Path)
		case SortBySeverity:
			// Always most serious first.
			return cmp.Compare(statusRank(left.Status), statusRank(right.Status))
		case SortByCount:
			result := cmp.Compare(left.UnknownBytes, right.UnknownBytes)
			if desc {
				result = -result
			}
			return result
		default:
			return 0
		}
	})
}
