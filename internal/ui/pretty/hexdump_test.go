package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jpglitch/internal/ui/pretty"
	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

func TestBytesPerRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width int
		want  int
	}{
		{0, 8},
		{40, 8},
		{80, 16},
		{100, 16},
		{120, 24},
		{500, 32},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, pretty.BytesPerRow(testCase.width), "width %d", testCase.width)
	}
}

func TestHexDump_Format(t *testing.T) {
	t.Parallel()

	data := []byte{0xFF, 0xD8, 0xFF, 0xFE, 0x00, 0x04, 'h', 'i', 0xFF, 0xD9}
	dump := pretty.NewHexDump(pretty.NewStyles(false), 8)

	out := dump.Format(data, jpegmap.Classify(data), 0, len(data))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "00000000  ff d8 ff fe 00 04 68 69 |......hi|", lines[0])
	assert.Equal(t, "00000008  ff d9                   |..      |", lines[1])
}

func TestHexDump_FormatAlignsToRows(t *testing.T) {
	t.Parallel()

	data := make([]byte, 40)
	dump := pretty.NewHexDump(pretty.NewStyles(false), 16)

	out := dump.Format(data, nil, 20, 33)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "00000010"))
	assert.True(t, strings.HasPrefix(lines[1], "00000020"))

	assert.Empty(t, dump.Format(data, nil, 50, 60))
	assert.Empty(t, dump.Format(nil, nil, 0, 10))
}

func TestHexDump_Geometry(t *testing.T) {
	t.Parallel()

	dump := pretty.NewHexDump(pretty.NewStyles(false), 0)

	assert.Equal(t, pretty.BytesPerRow(pretty.DefaultTermWidth), dump.BytesPerRow())
	assert.Equal(t, 16, dump.RowStart(31))
	assert.Equal(t, 0, dump.RowStart(0))
}

func TestHexDump_FormatRowCursorPastEnd(t *testing.T) {
	t.Parallel()

	data := []byte{0x01, 0x02}
	dump := pretty.NewHexDump(pretty.NewStyles(false), 8)

	row := dump.FormatRow(data, nil, 0, len(data))
	assert.True(t, strings.HasPrefix(row, "00000000  01 02"))
	assert.Contains(t, row, "|..")
}

func TestStyles_FormatRegionLegend(t *testing.T) {
	t.Parallel()

	legend := pretty.NewStyles(false).FormatRegionLegend([]jpegmap.Region{jpegmap.ScanData, jpegmap.Comment})

	assert.Contains(t, legend, "scan-data")
	assert.Contains(t, legend, "comment")
}
