// Package patch provides byte edit types and application logic for buffer mutations.
package patch

// ByteEdit represents a single byte-range replacement in a buffer.
type ByteEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewBytes is the replacement content.
	NewBytes []byte
}

// Delta returns the change in buffer length the edit causes.
func (e ByteEdit) Delta() int {
	return len(e.NewBytes) - (e.EndOffset - e.StartOffset)
}

// EditBuilder accumulates byte edits for a buffer.
type EditBuilder struct {
	Edits []ByteEdit
}

// NewEditBuilder creates a new EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{
		Edits: make([]ByteEdit, 0),
	}
}

// ReplaceRange adds an edit that replaces bytes [start, end) with newBytes.
// newBytes is copied.
func (b *EditBuilder) ReplaceRange(start, end int, newBytes []byte) {
	b.Edits = append(b.Edits, ByteEdit{
		StartOffset: start,
		EndOffset:   end,
		NewBytes:    append([]byte(nil), newBytes...),
	})
}

// SetByte adds an edit that overwrites the single byte at offset.
func (b *EditBuilder) SetByte(offset int, value byte) {
	b.ReplaceRange(offset, offset+1, []byte{value})
}

// Insert adds an edit that inserts data at the given offset.
func (b *EditBuilder) Insert(offset int, data []byte) {
	b.ReplaceRange(offset, offset, data)
}

// Delete adds an edit that deletes bytes [start, end).
func (b *EditBuilder) Delete(start, end int) {
	b.ReplaceRange(start, end, nil)
}

// Len returns the number of accumulated edits.
func (b *EditBuilder) Len() int {
	return len(b.Edits)
}
