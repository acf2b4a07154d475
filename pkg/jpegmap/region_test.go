package jpegmap_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

func TestRegion_StringParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, region := range jpegmap.AllRegions() {
		parsed, err := jpegmap.ParseRegion(region.String())
		require.NoError(t, err, region.String())
		assert.Equal(t, region, parsed)
	}
}

func TestParseRegion_Unknown(t *testing.T) {
	t.Parallel()

	_, err := jpegmap.ParseRegion("pixels")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pixels")
}

func TestParseRegions(t *testing.T) {
	t.Parallel()

	regions, err := jpegmap.ParseRegions([]string{"scan-data", "comment"})
	require.NoError(t, err)
	assert.Equal(t, []jpegmap.Region{jpegmap.ScanData, jpegmap.Comment}, regions)

	_, err = jpegmap.ParseRegions([]string{"scan-data", "bogus"})
	require.Error(t, err)
}

func TestRegion_JSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(map[string]jpegmap.Region{"r": jpegmap.HuffmanTable})
	require.NoError(t, err)
	assert.JSONEq(t, `{"r":"huffman-table"}`, string(out))

	var decoded struct {
		R jpegmap.Region `json:"r"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"r":"end-marker"}`), &decoded))
	assert.Equal(t, jpegmap.EndMarker, decoded.R)
}

func TestRegion_InvalidString(t *testing.T) {
	t.Parallel()

	invalid := jpegmap.Region(200)
	assert.False(t, invalid.IsValid())
	assert.Equal(t, "region(200)", invalid.String())
}

func TestMarkerName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   byte
		want string
	}{
		{0xD8, "SOI"},
		{0xD9, "EOI"},
		{0xDA, "SOS"},
		{0xDB, "DQT"},
		{0xC4, "DHT"},
		{0xDD, "DRI"},
		{0xFE, "COM"},
		{0x01, "TEM"},
		{0xD5, "RST5"},
		{0xE1, "APP1"},
		{0xEE, "APP14"},
		{0xC0, "SOF0"},
		{0xC2, "SOF2"},
		{0xC8, ""},
		{0x42, ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, jpegmap.MarkerName(testCase.id))
		})
	}
}

func TestMarkerAt(t *testing.T) {
	t.Parallel()

	data := []byte{0xFF, 0xD8, 0xFF, 0x00, 0xFF, 0xFF, 0xFF}

	id, ok := jpegmap.MarkerAt(data, 0)
	assert.True(t, ok)
	assert.Equal(t, byte(0xD8), id)

	_, ok = jpegmap.MarkerAt(data, 2)
	assert.False(t, ok, "stuffed byte is not a marker")

	_, ok = jpegmap.MarkerAt(data, 4)
	assert.False(t, ok, "fill byte is not a marker")

	_, ok = jpegmap.MarkerAt(data, 6)
	assert.False(t, ok, "prefix at end of buffer")

	_, ok = jpegmap.MarkerAt(data, 1)
	assert.False(t, ok)
}

func TestSegmentRegion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, jpegmap.ApplicationSegment, jpegmap.SegmentRegion(0xE0))
	assert.Equal(t, jpegmap.ApplicationSegment, jpegmap.SegmentRegion(0xEF))
	assert.Equal(t, jpegmap.FrameHeader, jpegmap.SegmentRegion(0xC0))
	assert.Equal(t, jpegmap.FrameHeader, jpegmap.SegmentRegion(0xCF))
	assert.Equal(t, jpegmap.HuffmanTable, jpegmap.SegmentRegion(0xC4))
	assert.Equal(t, jpegmap.Other, jpegmap.SegmentRegion(0xCC))
	assert.Equal(t, jpegmap.ScanHeader, jpegmap.SegmentRegion(0xDA))
	assert.Equal(t, jpegmap.Other, jpegmap.SegmentRegion(0xF0))
}
