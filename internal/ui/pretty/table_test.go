package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/jpglitch/internal/ui/pretty"
	"github.com/yaklabco/jpglitch/pkg/analysis"
	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

func TestTableFormatter_FormatFileTable(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 0)

	out := formatter.FormatFileTable([]analysis.FileAnalysis{
		{Path: "a.jpg", Status: analysis.StatusComplete, Size: 1024, EndMarkers: 1, FirstUnknown: -1},
		{Path: "b.jpg", Status: analysis.StatusTruncated, Size: 64, UnknownBytes: 40, FirstUnknown: 24},
		{Path: "c.jpg", Status: analysis.StatusUnrecognized, Size: 10, Issue: true, FirstUnknown: -1},
		{Path: "d.jpg", Status: analysis.StatusError, Error: "permission denied", Issue: true, FirstUnknown: -1},
	})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 8, "header, two separators, four rows, legend")

	assert.Contains(t, lines[0], "FILE")
	assert.Contains(t, lines[0], "STATUS")
	assert.Contains(t, lines[2], "1 end marker")
	assert.Contains(t, lines[3], "malformed segment at 0x18")
	assert.Contains(t, lines[4], "no start marker")
	assert.True(t, strings.HasSuffix(lines[4], "!"))
	assert.Contains(t, lines[5], "permission denied")
	assert.Contains(t, lines[7], "Legend")

	assert.Empty(t, formatter.FormatFileTable(nil))
}

func TestTableFormatter_NarrowTerminal(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 60)
	long := strings.Repeat("deep/", 20) + "photo.jpg"

	out := formatter.FormatFileTable([]analysis.FileAnalysis{
		{Path: long, Status: analysis.StatusComplete, FirstUnknown: -1},
	})

	assert.Contains(t, out, "...")
	assert.Contains(t, out, "photo.jpg")
	assert.NotContains(t, out, long)
}

func TestTableFormatter_FormatRegionTable(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 100)

	out := formatter.FormatRegionTable([]analysis.RegionAnalysis{
		{Region: jpegmap.ScanData, Bytes: 900, Runs: 3, Files: 2, Share: 0.9},
		{Region: jpegmap.StartMarker, Bytes: 100, Runs: 50, Files: 2, Share: 0.1},
	})

	assert.Contains(t, out, "REGION")
	assert.Contains(t, out, "scan-data")
	assert.Contains(t, out, "90.0%")
	assert.Contains(t, out, "10.0%")
	assert.Empty(t, formatter.FormatRegionTable(nil))
}

func TestTableFormatter_FormatTableSummary(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 100)

	out := formatter.FormatTableSummary(analysis.Totals{
		Files: 3, Complete: 1, Truncated: 1, Unrecognized: 1,
	}, "12ms")

	assert.Equal(t, " 3 files scanned | 1 complete | 1 truncated | 1 unrecognized | 12ms", out)
}
