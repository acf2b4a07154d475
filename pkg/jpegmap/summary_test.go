package jpegmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

func TestSummarize_Nil(t *testing.T) {
	t.Parallel()

	summary := jpegmap.Summarize(nil)

	assert.False(t, summary.Recognized)
	assert.False(t, summary.Complete)
	assert.Equal(t, -1, summary.FirstUnknown)
	assert.NotNil(t, summary.Bytes)
}

func TestSummarize_Complete(t *testing.T) {
	t.Parallel()

	data := join(
		[]byte{0xFF, 0xD8},
		[]byte{0xFF, 0xDA, 0x00, 0x02},
		[]byte{0xAA, 0xFF, 0xD0, 0xBB},
		[]byte{0xFF, 0xD9},
		[]byte{0xFF, 0xD8, 0xFF, 0xD9},
	)

	summary := jpegmap.Summarize(jpegmap.Classify(data))

	assert.True(t, summary.Recognized)
	assert.True(t, summary.Complete)
	assert.False(t, summary.Truncated)
	assert.Equal(t, len(data), summary.Length)
	assert.Equal(t, 2, summary.EndMarkers)
	assert.Equal(t, 2, summary.Bytes[jpegmap.ScanData])
	assert.Equal(t, 2, summary.Runs[jpegmap.ScanData])
	assert.Equal(t, 1, summary.Runs[jpegmap.RestartMarker])
}

func TestSummarize_Truncated(t *testing.T) {
	t.Parallel()

	data := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x40, 0x01, 0x02}

	summary := jpegmap.Summarize(jpegmap.Classify(data))

	assert.True(t, summary.Recognized)
	assert.False(t, summary.Complete)
	assert.True(t, summary.Truncated)
	assert.Equal(t, 2, summary.FirstUnknown)
	assert.Equal(t, 6, summary.Bytes[jpegmap.Unknown])
}
