package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

// regionColumnWidth fits the longest region name.
const regionColumnWidth = 20

// FormatRun formats one region run for terminal output:
// offset range, region, length, and the marker name when the run starts on one.
func (s *Styles) FormatRun(run jpegmap.Run, data []byte) string {
	offsets := fmt.Sprintf("0x%08x-0x%08x", run.StartOffset, run.EndOffset)
	name := fmt.Sprintf("%-*s", regionColumnWidth, run.Region.String())

	line := fmt.Sprintf("  %s  %s  %s",
		s.Offset.Render(offsets),
		s.Region(run.Region).Render(name),
		s.Dim.Render(fmt.Sprintf("%8d bytes", run.Len())),
	)

	if marker := runMarker(run, data); marker != "" {
		line += "  " + s.Marker.Render(marker)
	}

	return line
}

// runMarker names the marker at the start of a run, if it starts with one.
func runMarker(run jpegmap.Run, data []byte) string {
	switch run.Region {
	case jpegmap.ScanData, jpegmap.Unknown, jpegmap.FrameHeaderWidth:
		return ""
	}
	id, ok := jpegmap.MarkerAt(data, run.StartOffset)
	if !ok {
		return ""
	}
	return jpegmap.MarkerName(id)
}

// FormatLayoutHeader formats the header line for one file's layout listing.
func (s *Styles) FormatLayoutHeader(path string, summary jpegmap.Summary) string {
	header := s.FilePath.Render(path)

	switch {
	case !summary.Recognized:
		return header + " " + s.Error.Render("not a JPEG file")
	case summary.Truncated:
		header += " " + s.Warning.Render(fmt.Sprintf("truncated at 0x%08x", summary.FirstUnknown))
	case !summary.Complete:
		header += " " + s.Warning.Render(fmt.Sprintf("unknown bytes from 0x%08x", summary.FirstUnknown))
	}

	return header + s.Dim.Render(fmt.Sprintf(" (%d bytes, %d end markers)", summary.Length, summary.EndMarkers))
}

// FormatLayout formats every run of a layout, optionally restricted to one region.
func (s *Styles) FormatLayout(layout *jpegmap.Layout, data []byte, only *jpegmap.Region) string {
	var builder strings.Builder
	for _, run := range layout.Runs() {
		if only != nil && run.Region != *only {
			continue
		}
		builder.WriteString(s.FormatRun(run, data))
		builder.WriteString("\n")
	}
	return builder.String()
}
