package patch_test

import (
	"bytes"
	"testing"

	"github.com/yaklabco/jpglitch/pkg/patch"
)

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content []byte
		edits   []patch.ByteEdit
		want    []byte
	}{
		{
			name:    "empty edits returns copy of original",
			content: []byte{0x01, 0x02},
			edits:   nil,
			want:    []byte{0x01, 0x02},
		},
		{
			name:    "single overwrite",
			content: []byte{0xFF, 0xD8, 0x00, 0x00},
			edits: []patch.ByteEdit{
				{StartOffset: 2, EndOffset: 3, NewBytes: []byte{0xAA}},
			},
			want: []byte{0xFF, 0xD8, 0xAA, 0x00},
		},
		{
			name:    "insertion",
			content: []byte{0x01, 0x04},
			edits: []patch.ByteEdit{
				{StartOffset: 1, EndOffset: 1, NewBytes: []byte{0x02, 0x03}},
			},
			want: []byte{0x01, 0x02, 0x03, 0x04},
		},
		{
			name:    "deletion",
			content: []byte{0x01, 0x02, 0x03, 0x04},
			edits: []patch.ByteEdit{
				{StartOffset: 1, EndOffset: 3},
			},
			want: []byte{0x01, 0x04},
		},
		{
			name:    "adjacent edits",
			content: []byte{0x00, 0x00, 0x00, 0x00},
			edits: []patch.ByteEdit{
				{StartOffset: 0, EndOffset: 2, NewBytes: []byte{0x11}},
				{StartOffset: 2, EndOffset: 4, NewBytes: []byte{0x22, 0x22, 0x22}},
			},
			want: []byte{0x11, 0x22, 0x22, 0x22},
		},
		{
			name:    "insert at end",
			content: []byte{0xFF, 0xD8},
			edits: []patch.ByteEdit{
				{StartOffset: 2, EndOffset: 2, NewBytes: []byte{0xFF, 0xD9}},
			},
			want: []byte{0xFF, 0xD8, 0xFF, 0xD9},
		},
		{
			name:    "empty content with insertion",
			content: nil,
			edits: []patch.ByteEdit{
				{StartOffset: 0, EndOffset: 0, NewBytes: []byte{0x01}},
			},
			want: []byte{0x01},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := patch.ApplyEdits(testCase.content, testCase.edits)
			if !bytes.Equal(got, testCase.want) {
				t.Errorf("ApplyEdits() = % X, want % X", got, testCase.want)
			}
		})
	}
}

func TestApplyEdits_PreservesInput(t *testing.T) {
	t.Parallel()

	content := []byte{0x10, 0x20, 0x30}
	original := bytes.Clone(content)

	got := patch.ApplyEdits(content, []patch.ByteEdit{{StartOffset: 0, EndOffset: 1, NewBytes: []byte{0x99}}})

	if !bytes.Equal(content, original) {
		t.Error("ApplyEdits modified original content")
	}

	got[1] = 0x77
	if content[1] != 0x20 {
		t.Error("result aliases the input")
	}
}

func TestEditBuilder(t *testing.T) {
	t.Parallel()

	builder := patch.NewEditBuilder()
	payload := []byte{0xAB}
	builder.SetByte(0, 0x01)
	builder.Insert(2, payload)
	builder.Delete(3, 5)
	builder.ReplaceRange(6, 7, []byte{0x02, 0x03})

	payload[0] = 0x00

	if builder.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", builder.Len())
	}
	if builder.Edits[1].NewBytes[0] != 0xAB {
		t.Error("builder did not copy inserted bytes")
	}
	if builder.Edits[2].Delta() != -2 {
		t.Errorf("delete delta = %d, want -2", builder.Edits[2].Delta())
	}
	if builder.Edits[3].Delta() != 1 {
		t.Errorf("replace delta = %d, want 1", builder.Edits[3].Delta())
	}
}
