package jpegmap

// minClassifyLen is the shortest buffer that can hold a start marker plus one marker.
const minClassifyLen = 4

// EndPolicy controls what the scan does after an end-of-image marker.
type EndPolicy string

const (
	// EndContinue keeps scanning past EOI so concatenated images are mapped too.
	EndContinue EndPolicy = "continue"

	// EndStop ends the scan at the first EOI; trailing bytes stay Unknown.
	EndStop EndPolicy = "stop"
)

// IsValid returns true if the policy is a known value.
func (p EndPolicy) IsValid() bool {
	switch p {
	case EndContinue, EndStop:
		return true
	default:
		return false
	}
}

// Options configures classification.
type Options struct {
	// EndPolicy selects the behavior after an EOI marker. Empty means EndContinue.
	EndPolicy EndPolicy
}

// DefaultOptions returns the options used by Classify.
func DefaultOptions() Options {
	return Options{EndPolicy: EndContinue}
}

// Classify maps every byte of data to a Region using DefaultOptions.
// It returns nil if data is shorter than four bytes or does not begin with SOI.
func Classify(data []byte) *Layout {
	return ClassifyWithOptions(data, DefaultOptions())
}

// ClassifyWithOptions maps every byte of data to a Region.
//
// The scan is best-effort and never fails once the start marker is recognized:
// a segment whose declared length is below two or runs past the end of data stops
// the scan, leaving every byte from that point on tagged Unknown.
func ClassifyWithOptions(data []byte, opts Options) *Layout {
	if len(data) < minClassifyLen || data[0] != MarkerPrefix || data[1] != MarkerSOI {
		return nil
	}

	s := &scanner{
		data:    data,
		regions: make([]Region, len(data)),
		opts:    opts,
	}
	s.tag(0, 2, StartMarker)
	s.run(2)

	return &Layout{Regions: s.regions, Truncated: s.truncated}
}

// scanner holds the state of one classification pass.
type scanner struct {
	data      []byte
	regions   []Region
	opts      Options
	truncated bool
}

// tag assigns region to bytes [start, end), clipped to the buffer.
func (s *scanner) tag(start, end int, region Region) {
	end = min(end, len(s.regions))
	for idx := start; idx < end; idx++ {
		s.regions[idx] = region
	}
}

// run is the main marker loop starting at pos.
func (s *scanner) run(pos int) {
	n := len(s.data)

	for pos < n {
		if s.data[pos] != MarkerPrefix || pos+1 >= n {
			s.regions[pos] = Other
			pos++
			continue
		}

		id := s.data[pos+1]

		switch {
		case id == MarkerEOI:
			s.tag(pos, pos+2, EndMarker)
			pos += 2
			if s.opts.EndPolicy == EndStop {
				return
			}
			continue
		case IsRestart(id):
			s.tag(pos, pos+2, RestartMarker)
			pos += 2
			continue
		case id == MarkerTEM:
			s.tag(pos, pos+2, Other)
			pos += 2
			continue
		case id == MarkerSOI:
			// A later SOI opens a concatenated image and has no length field.
			s.tag(pos, pos+2, StartMarker)
			pos += 2
			continue
		}

		end, ok := s.segmentEnd(pos)
		if !ok {
			s.truncated = true
			return
		}

		region := SegmentRegion(id)
		s.tag(pos, end, region)

		switch region {
		case FrameHeader:
			// Width is the big-endian field at marker+7.
			if pos+8 < end {
				s.tag(pos+7, pos+9, FrameHeaderWidth)
			}
		case ScanHeader:
			end = s.entropy(end)
		}

		pos = end
	}
}

// segmentEnd reads the length field of the segment whose marker starts at pos.
// It returns false when the field is missing, below two, or overruns the buffer.
func (s *scanner) segmentEnd(pos int) (int, bool) {
	if pos+4 > len(s.data) {
		return 0, false
	}

	length := int(s.data[pos+2])<<8 | int(s.data[pos+3])
	if length < 2 {
		return 0, false
	}

	end := pos + 2 + length
	if end > len(s.data) {
		return 0, false
	}

	return end, true
}

// entropy consumes entropy-coded scan data from pos and returns the offset of the
// marker that terminates it, or len(data) if the buffer ends first.
func (s *scanner) entropy(pos int) int {
	n := len(s.data)

	for pos < n {
		if s.data[pos] != MarkerPrefix || pos+1 >= n {
			s.regions[pos] = ScanData
			pos++
			continue
		}

		next := s.data[pos+1]
		switch {
		case next == stuffByte:
			s.tag(pos, pos+2, ScanData)
			pos += 2
		case IsRestart(next):
			s.tag(pos, pos+2, RestartMarker)
			pos += 2
		case next == MarkerPrefix:
			s.regions[pos] = ScanData
			pos++
		default:
			return pos
		}
	}

	return pos
}
