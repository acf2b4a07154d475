package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

// Hex dump geometry.
const (
	offsetColumnWidth = 10 // "%08x" plus two spaces
	gutterWidth       = 3  // " |" before and "|" after the ASCII column
	cellsPerByte      = 4  // two hex digits, a space, and one ASCII column
	rowGroup          = 8
	minBytesPerRow    = 8
	maxBytesPerRow    = 32
	noCursor          = -1
)

// BytesPerRow returns how many bytes fit on one hex dump row of the given width,
// rounded down to a multiple of eight and kept between 8 and 32.
func BytesPerRow(width int) int {
	fit := (width - offsetColumnWidth - gutterWidth) / cellsPerByte
	fit -= fit % rowGroup
	return min(max(fit, minBytesPerRow), maxBytesPerRow)
}

// HexDump renders bytes as rows of hex and ASCII columns colored by region.
type HexDump struct {
	styles      *Styles
	bytesPerRow int
}

// NewHexDump creates a hex dump renderer. A bytesPerRow of zero or less uses
// BytesPerRow(DefaultTermWidth).
func NewHexDump(styles *Styles, bytesPerRow int) *HexDump {
	if bytesPerRow <= 0 {
		bytesPerRow = BytesPerRow(DefaultTermWidth)
	}
	return &HexDump{styles: styles, bytesPerRow: bytesPerRow}
}

// BytesPerRow returns the row width in bytes.
func (h *HexDump) BytesPerRow() int {
	return h.bytesPerRow
}

// RowStart returns the offset of the row containing offset.
func (h *HexDump) RowStart(offset int) int {
	return offset - offset%h.bytesPerRow
}

// Format renders the rows covering [start, end). Rows are aligned to the row
// width, so the first row may begin before start. A nil layout colors every
// byte as Unknown.
func (h *HexDump) Format(data []byte, layout *jpegmap.Layout, start, end int) string {
	start = max(start, 0)
	end = min(end, len(data))
	if start >= end {
		return ""
	}

	var builder strings.Builder
	for row := h.RowStart(start); row < end; row += h.bytesPerRow {
		builder.WriteString(h.FormatRow(data, layout, row, noCursor))
		builder.WriteString("\n")
	}
	return builder.String()
}

// FormatRow renders a single row starting at rowStart. The byte at cursor is
// highlighted; a cursor equal to len(data) shows an empty cell past the last byte.
func (h *HexDump) FormatRow(data []byte, layout *jpegmap.Layout, rowStart, cursor int) string {
	var hexCol, asciiCol strings.Builder

	for idx := range h.bytesPerRow {
		offset := rowStart + idx
		if idx > 0 {
			hexCol.WriteString(" ")
		}

		if offset >= len(data) {
			cell, char := "  ", " "
			if offset == cursor {
				cell, char = h.styles.Cursor.Render(cell), h.styles.Cursor.Render(char)
			}
			hexCol.WriteString(cell)
			asciiCol.WriteString(char)
			continue
		}

		value := data[offset]
		style := h.styles.Region(layout.RegionAt(offset))
		if offset == cursor {
			style = h.styles.Cursor.Inherit(style)
		}

		hexCol.WriteString(style.Render(fmt.Sprintf("%02x", value)))
		asciiCol.WriteString(style.Render(string(printable(value))))
	}

	return fmt.Sprintf("%s  %s %s%s%s",
		h.styles.Offset.Render(fmt.Sprintf("%08x", rowStart)),
		hexCol.String(),
		h.styles.Dim.Render("|"),
		asciiCol.String(),
		h.styles.Dim.Render("|"),
	)
}

func printable(value byte) byte {
	if value >= ' ' && value <= '~' {
		return value
	}
	return '.'
}

// FormatRegionLegend renders region names, each in its own color.
func (s *Styles) FormatRegionLegend(regions []jpegmap.Region) string {
	parts := make([]string, 0, len(regions))
	for _, region := range regions {
		parts = append(parts, s.Region(region).Render(region.String()))
	}
	return s.TableLegend.Render(" Regions: ") + strings.Join(parts, "  ")
}
