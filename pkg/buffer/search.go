package buffer

import "bytes"

// Find returns the offset of the first exact match of pattern in data at or after
// from, or -1. A negative from searches from the start. An empty pattern never matches.
func Find(data, pattern []byte, from int) int {
	if len(pattern) == 0 || from >= len(data) {
		return -1
	}
	from = max(from, 0)

	idx := bytes.Index(data[from:], pattern)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// FindLast returns the offset of the last exact match of pattern in data that
// starts strictly before before, or -1.
func FindLast(data, pattern []byte, before int) int {
	if len(pattern) == 0 || before <= 0 {
		return -1
	}

	// A match starting at before-1 may extend past before.
	end := min(before-1+len(pattern), len(data))
	return bytes.LastIndex(data[:end], pattern)
}

// FindAll returns the offsets of all non-overlapping matches of pattern in data.
func FindAll(data, pattern []byte) []int {
	var offsets []int
	for from := 0; ; {
		idx := Find(data, pattern, from)
		if idx < 0 {
			return offsets
		}
		offsets = append(offsets, idx)
		from = idx + len(pattern)
	}
}

// Find searches the current content. Returns -1 when nothing is loaded.
func (b *Buffer) Find(pattern []byte, from int) int {
	current := b.Current()
	if current == nil {
		return -1
	}
	return Find(current.Data, pattern, from)
}

// FindPrevious returns the last match starting before the given offset, or -1.
func (b *Buffer) FindPrevious(pattern []byte, before int) int {
	current := b.Current()
	if current == nil {
		return -1
	}
	return FindLast(current.Data, pattern, before)
}

// Replace overwrites the match of pattern at offset with replacement and commits
// the result. Replacement must be the same length as pattern and pattern must
// match at offset; otherwise nothing changes and false is returned.
func (b *Buffer) Replace(offset int, pattern, replacement []byte) bool {
	current := b.Current()
	if current == nil || len(pattern) == 0 || len(replacement) != len(pattern) {
		return false
	}
	if offset < 0 || offset+len(pattern) > current.Len() {
		return false
	}
	if !bytes.Equal(current.Data[offset:offset+len(pattern)], pattern) {
		return false
	}

	return b.Edit(func(data []byte) {
		copy(data[offset:], replacement)
	})
}

// ReplaceAll replaces every non-overlapping match of pattern as a single
// snapshot and returns the number of replacements made.
func (b *Buffer) ReplaceAll(pattern, replacement []byte) int {
	current := b.Current()
	if current == nil || len(pattern) == 0 || len(replacement) != len(pattern) {
		return 0
	}

	offsets := FindAll(current.Data, pattern)
	if len(offsets) == 0 {
		return 0
	}

	b.Edit(func(data []byte) {
		for _, offset := range offsets {
			copy(data[offset:], replacement)
		}
	})

	return len(offsets)
}
