package jpegmap

// Summary captures aggregate information about a classified buffer.
type Summary struct {
	// Recognized is false when Classify returned nil.
	Recognized bool

	// Length is the number of bytes classified.
	Length int

	// Complete is true when no byte was left Unknown.
	Complete bool

	// Truncated is true when the scan aborted on a malformed segment.
	Truncated bool

	// Bytes counts bytes per region.
	Bytes map[Region]int

	// Runs counts maximal runs per region.
	Runs map[Region]int

	// EndMarkers is the number of EOI markers found.
	EndMarkers int

	// FirstUnknown is the offset of the first Unknown byte, or -1 if there is none.
	FirstUnknown int
}

// Summarize computes a Summary for a layout. A nil layout yields an unrecognized summary.
func Summarize(layout *Layout) Summary {
	summary := Summary{
		Bytes:        make(map[Region]int),
		Runs:         make(map[Region]int),
		FirstUnknown: -1,
	}
	if layout == nil {
		return summary
	}

	summary.Recognized = true
	summary.Length = layout.Len()
	summary.Truncated = layout.Truncated

	for offset, region := range layout.Regions {
		summary.Bytes[region]++
		if region == Unknown && summary.FirstUnknown < 0 {
			summary.FirstUnknown = offset
		}
	}

	for _, run := range layout.Runs() {
		summary.Runs[run.Region]++
		if run.Region == EndMarker {
			// Adjacent EOI markers merge into one run.
			summary.EndMarkers += run.Len() / 2
		}
	}

	summary.Complete = summary.FirstUnknown < 0

	return summary
}
