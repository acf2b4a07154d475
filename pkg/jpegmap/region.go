package jpegmap

import "fmt"

// Region classifies which structural part of a JPEG file a byte belongs to.
type Region uint8

// Region kinds cover every byte of a classified buffer.
const (
	Unknown Region = iota
	StartMarker
	ApplicationSegment
	QuantizationTable
	FrameHeader
	FrameHeaderWidth // image width field inside a frame header
	HuffmanTable
	RestartInterval
	ScanHeader
	ScanData
	RestartMarker
	Comment
	EndMarker
	Other

	regionCount
)

//nolint:gochecknoglobals // Read-only lookup table.
var regionNames = [regionCount]string{
	Unknown:            "unknown",
	StartMarker:        "start-marker",
	ApplicationSegment: "application-segment",
	QuantizationTable:  "quantization-table",
	FrameHeader:        "frame-header",
	FrameHeaderWidth:   "frame-header-width",
	HuffmanTable:       "huffman-table",
	RestartInterval:    "restart-interval",
	ScanHeader:         "scan-header",
	ScanData:           "scan-data",
	RestartMarker:      "restart-marker",
	Comment:            "comment",
	EndMarker:          "end-marker",
	Other:              "other",
}

// String returns the kebab-case name used in config files and output.
func (r Region) String() string {
	if r >= regionCount {
		return fmt.Sprintf("region(%d)", uint8(r))
	}
	return regionNames[r]
}

// IsValid reports whether r is one of the defined regions.
func (r Region) IsValid() bool {
	return r < regionCount
}

// MarshalText implements encoding.TextMarshaler.
func (r Region) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid region %d", uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := ParseRegion(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRegion resolves a region by name.
func ParseRegion(name string) (Region, error) {
	for idx, candidate := range regionNames {
		if candidate == name {
			return Region(idx), nil
		}
	}
	return Unknown, fmt.Errorf("unknown region %q", name)
}

// ParseRegions resolves a list of region names, failing on the first unknown name.
func ParseRegions(names []string) ([]Region, error) {
	regions := make([]Region, 0, len(names))
	for _, name := range names {
		region, err := ParseRegion(name)
		if err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	return regions, nil
}

// AllRegions returns every region in tag order.
func AllRegions() []Region {
	regions := make([]Region, 0, regionCount)
	for r := Unknown; r < regionCount; r++ {
		regions = append(regions, r)
	}
	return regions
}

// RegionNames returns the names of every region in tag order.
func RegionNames() []string {
	names := make([]string, 0, regionCount)
	for _, name := range regionNames {
		names = append(names, name)
	}
	return names
}
