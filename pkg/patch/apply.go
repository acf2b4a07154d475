package patch

// ApplyEdits applies a sorted, validated slice of edits to content.
// Edits must be prepared with PrepareEdits before calling.
// The input is never modified; a new slice is always returned.
func ApplyEdits(content []byte, edits []ByteEdit) []byte {
	delta := 0
	for _, e := range edits {
		delta += e.Delta()
	}

	out := make([]byte, 0, len(content)+delta)

	cursor := 0
	for _, e := range edits {
		out = append(out, content[cursor:e.StartOffset]...)
		out = append(out, e.NewBytes...)
		cursor = e.EndOffset
	}
	out = append(out, content[cursor:]...)

	return out
}
