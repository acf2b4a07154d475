package jpegmap

import "strconv"

// Marker bytes of the JPEG container format.
const (
	MarkerPrefix byte = 0xFF

	MarkerSOI  byte = 0xD8
	MarkerEOI  byte = 0xD9
	MarkerSOS  byte = 0xDA
	MarkerDQT  byte = 0xDB
	MarkerDRI  byte = 0xDD
	MarkerDHT  byte = 0xC4
	MarkerJPG  byte = 0xC8
	MarkerDAC  byte = 0xCC
	MarkerCOM  byte = 0xFE
	MarkerTEM  byte = 0x01
	MarkerRST0 byte = 0xD0
	MarkerRST7 byte = 0xD7
	MarkerSOF0 byte = 0xC0
	MarkerSOFF byte = 0xCF
	MarkerAPP0 byte = 0xE0
	MarkerAPPF byte = 0xEF

	// stuffByte follows a prefix byte inside entropy-coded data to escape a literal 0xFF.
	stuffByte byte = 0x00
)

// IsRestart reports whether id is one of the eight RSTn marker ids.
func IsRestart(id byte) bool {
	return id >= MarkerRST0 && id <= MarkerRST7
}

// IsFrameHeader reports whether id is a start-of-frame marker id.
// DHT, JPG, and DAC share the 0xC0 range but are not frames.
func IsFrameHeader(id byte) bool {
	if id < MarkerSOF0 || id > MarkerSOFF {
		return false
	}
	return id != MarkerDHT && id != MarkerJPG && id != MarkerDAC
}

// SegmentRegion returns the region tag for a length-carrying segment with the given id.
func SegmentRegion(id byte) Region {
	switch {
	case id >= MarkerAPP0 && id <= MarkerAPPF:
		return ApplicationSegment
	case id == MarkerDQT:
		return QuantizationTable
	case id == MarkerDHT:
		return HuffmanTable
	case id == MarkerDRI:
		return RestartInterval
	case id == MarkerCOM:
		return Comment
	case id == MarkerSOS:
		return ScanHeader
	case IsFrameHeader(id):
		return FrameHeader
	default:
		return Other
	}
}

// MarkerName returns the conventional mnemonic for a marker id, or "" if none applies.
func MarkerName(id byte) string {
	switch {
	case id == MarkerSOI:
		return "SOI"
	case id == MarkerEOI:
		return "EOI"
	case id == MarkerSOS:
		return "SOS"
	case id == MarkerDQT:
		return "DQT"
	case id == MarkerDHT:
		return "DHT"
	case id == MarkerDRI:
		return "DRI"
	case id == MarkerCOM:
		return "COM"
	case id == MarkerTEM:
		return "TEM"
	case IsRestart(id):
		return "RST" + strconv.Itoa(int(id-MarkerRST0))
	case id >= MarkerAPP0 && id <= MarkerAPPF:
		return "APP" + strconv.Itoa(int(id-MarkerAPP0))
	case IsFrameHeader(id):
		return "SOF" + strconv.Itoa(int(id-MarkerSOF0))
	default:
		return ""
	}
}

// MarkerAt returns the marker id at offset when data[offset] is a prefix byte
// followed by a non-zero, non-prefix id byte.
func MarkerAt(data []byte, offset int) (byte, bool) {
	if offset < 0 || offset+1 >= len(data) || data[offset] != MarkerPrefix {
		return 0, false
	}
	id := data[offset+1]
	if id == stuffByte || id == MarkerPrefix {
		return 0, false
	}
	return id, true
}
