package jpegmap_test

import (
	"testing"

	"github.com/yaklabco/jpglitch/pkg/jpegmap"
)

// benchJPEG builds a plausible file: APP0, DQT, SOF0, DHT, SOS and size bytes of
// scan data with a restart marker every 4 KiB.
func benchJPEG(size int) []byte {
	data := join(
		[]byte{0xFF, 0xD8},
		[]byte{0xFF, 0xE0, 0x00, 0x10}, fill(0x4A, 14),
		[]byte{0xFF, 0xDB, 0x00, 0x43}, fill(0x10, 65),
		[]byte{0xFF, 0xC0, 0x00, 0x11, 0x08, 0x02, 0x00, 0x03, 0x00, 0x03}, fill(0x01, 9),
		[]byte{0xFF, 0xC4, 0x00, 0x1F}, fill(0x02, 29),
		[]byte{0xFF, 0xDA, 0x00, 0x0C}, fill(0x03, 10),
	)
	for idx := range size {
		if idx > 0 && idx%4096 == 0 {
			data = append(data, 0xFF, 0xD0+byte(idx/4096%8))
			continue
		}
		data = append(data, byte(idx%0xFE))
	}
	return append(data, 0xFF, 0xD9)
}

// Benchmark classification of a 1 MiB file.
func BenchmarkClassify(b *testing.B) {
	data := benchJPEG(1 << 20)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for range b.N {
		if jpegmap.Classify(data) == nil {
			b.Fail()
		}
	}
}

// Benchmark run collapsing, which every view and index rebuild performs.
func BenchmarkLayoutRuns(b *testing.B) {
	layout := jpegmap.Classify(benchJPEG(1 << 20))

	b.ResetTimer()
	for range b.N {
		if len(layout.Runs()) == 0 {
			b.Fail()
		}
	}
}
