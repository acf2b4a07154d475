package patch

// Diff returns the edits that turn old into updated.
//
// Bytes are compared position by position over the common prefix length; each
// maximal run of differing bytes becomes one replacement. A length difference is
// expressed as a trailing insert or delete. Applying the result to old with
// ApplyEdits yields updated.
func Diff(old, updated []byte) []ByteEdit {
	common := min(len(old), len(updated))

	var edits []ByteEdit
	for idx := 0; idx < common; {
		if old[idx] == updated[idx] {
			idx++
			continue
		}
		start := idx
		for idx < common && old[idx] != updated[idx] {
			idx++
		}
		edits = append(edits, ByteEdit{
			StartOffset: start,
			EndOffset:   idx,
			NewBytes:    append([]byte(nil), updated[start:idx]...),
		})
	}

	switch {
	case len(updated) > common:
		edits = append(edits, ByteEdit{
			StartOffset: common,
			EndOffset:   common,
			NewBytes:    append([]byte(nil), updated[common:]...),
		})
	case len(old) > common:
		edits = append(edits, ByteEdit{StartOffset: common, EndOffset: len(old)})
	}

	return edits
}

// ChangedBytes counts the bytes an edit list touches in the original content,
// plus any inserted bytes.
func ChangedBytes(edits []ByteEdit) int {
	total := 0
	for _, e := range edits {
		total += max(e.EndOffset-e.StartOffset, len(e.NewBytes))
	}
	return total
}
