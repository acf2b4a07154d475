package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jpglitch/pkg/buffer"
)

func TestFind(t *testing.T) {
	t.Parallel()

	data := []byte{0xFF, 0xD8, 0x00, 0xFF, 0xD8, 0xFF}

	tests := []struct {
		name    string
		pattern []byte
		from    int
		want    int
	}{
		{"first match", []byte{0xFF, 0xD8}, 0, 0},
		{"skips earlier match", []byte{0xFF, 0xD8}, 1, 3},
		{"match at from", []byte{0xFF, 0xD8}, 3, 3},
		{"no match after from", []byte{0xFF, 0xD8}, 4, -1},
		{"negative from", []byte{0x00}, -3, 2},
		{"from past end", []byte{0xFF}, 10, -1},
		{"empty pattern", nil, 0, -1},
		{"pattern longer than data", make([]byte, 10), 0, -1},
		{"partial at end", []byte{0xFF, 0xD9}, 0, -1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, buffer.Find(data, testCase.pattern, testCase.from))
		})
	}
}

func TestFindLast(t *testing.T) {
	t.Parallel()

	data := []byte{0xAB, 0xCD, 0xAB, 0xCD}
	pattern := []byte{0xAB, 0xCD}

	assert.Equal(t, 2, buffer.FindLast(data, pattern, 4))
	assert.Equal(t, 2, buffer.FindLast(data, pattern, 3))
	assert.Equal(t, 0, buffer.FindLast(data, pattern, 2))
	assert.Equal(t, 0, buffer.FindLast(data, pattern, 1))
	assert.Equal(t, -1, buffer.FindLast(data, pattern, 0))
	assert.Equal(t, 2, buffer.FindLast(data, pattern, 100))
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{0, 2}, buffer.FindAll([]byte{1, 1, 1, 1, 1}, []byte{1, 1}))
	assert.Nil(t, buffer.FindAll([]byte{1, 2}, []byte{3}))
}

func TestBuffer_FindAndReplace(t *testing.T) {
	t.Parallel()

	buf := loaded(t, minimalJPEG())
	pattern := []byte{0x12, 0x34}

	offset := buf.Find(pattern, 0)
	require.Equal(t, 6, offset)
	assert.Equal(t, 6, buf.FindPrevious(pattern, 12))
	assert.Equal(t, -1, buf.FindPrevious(pattern, 6))

	assert.False(t, buf.Replace(offset, pattern, []byte{0x99}), "length mismatch")
	assert.False(t, buf.Replace(offset+1, pattern, []byte{0x99, 0x98}), "pattern does not match")
	assert.False(t, buf.Replace(12, pattern, []byte{0x99, 0x98}), "out of range")
	assert.Equal(t, 1, buf.HistoryLen())

	require.True(t, buf.Replace(offset, pattern, []byte{0x99, 0x98}))
	assert.Equal(t, []byte{0x99, 0x98}, buf.Current().Data[6:8])
	assert.Equal(t, -1, buf.Find(pattern, 0))

	require.True(t, buf.Undo())
	assert.Equal(t, 6, buf.Find(pattern, 0))
}

func TestBuffer_ReplaceAll(t *testing.T) {
	t.Parallel()

	buf := loaded(t, []byte{0xAA, 0x00, 0xAA, 0x00, 0xAA})

	assert.Equal(t, 0, buf.ReplaceAll([]byte{0xAA}, []byte{0xBB, 0xBB}))
	assert.Equal(t, 3, buf.ReplaceAll([]byte{0xAA}, []byte{0xBB}))
	assert.Equal(t, []byte{0xBB, 0x00, 0xBB, 0x00, 0xBB}, buf.Current().Data)
	assert.Equal(t, 2, buf.HistoryLen())
}

func TestBuffer_SearchWithoutContent(t *testing.T) {
	t.Parallel()

	buf := buffer.New(buffer.Options{})

	assert.Equal(t, -1, buf.Find([]byte{1}, 0))
	assert.Equal(t, -1, buf.FindPrevious([]byte{1}, 5))
	assert.False(t, buf.Replace(0, []byte{1}, []byte{2}))
	assert.Equal(t, 0, buf.ReplaceAll([]byte{1}, []byte{2}))
}

func TestParsePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{"spaced hex", "FF D8", []byte{0xFF, 0xD8}, false},
		{"compact lowercase", "ffd8ffe0", []byte{0xFF, 0xD8, 0xFF, 0xE0}, false},
		{"colon separated", "ff:d9", []byte{0xFF, 0xD9}, false},
		{"0x prefix", "0xFFDA", []byte{0xFF, 0xDA}, false},
		{"ascii", "ascii:JFIF", []byte("JFIF"), false},
		{"ascii keeps spaces", "ascii:a b", []byte("a b"), false},
		{"odd digits", "FFD", nil, true},
		{"not hex", "zz", nil, true},
		{"empty", "", nil, true},
		{"empty ascii", "ascii:", nil, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := buffer.ParsePattern(testCase.input)
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}
