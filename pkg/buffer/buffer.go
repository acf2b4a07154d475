package buffer

import (
	"github.com/yaklabco/jpglitch/pkg/jpegmap"
	"github.com/yaklabco/jpglitch/pkg/patch"
)

// nibbleMask selects the low four bits of a byte.
const nibbleMask = 0x0F

// Options configures a Buffer.
type Options struct {
	// Classify controls how snapshots are classified.
	Classify jpegmap.Options
}

// Buffer owns the current byte content, its history and the active offset.
// A Buffer is not safe for concurrent use.
type Buffer struct {
	opts         Options
	history      []*Snapshot
	historyIndex int
	activeOffset int

	listeners map[int]Listener
	nextID    int
}

// New creates an empty Buffer. Nothing is loaded until Load is called.
func New(opts Options) *Buffer {
	return &Buffer{
		opts:         opts,
		historyIndex: -1,
		listeners:    make(map[int]Listener),
	}
}

// Subscribe registers a listener and returns a function that removes it.
func (b *Buffer) Subscribe(listener Listener) func() {
	id := b.nextID
	b.nextID++
	b.listeners[id] = listener

	return func() {
		delete(b.listeners, id)
	}
}

// Load replaces all state with a copy of data. History is reset to a single
// snapshot and the active offset moves to 0.
func (b *Buffer) Load(data []byte, name string) {
	owned := append([]byte{}, data...)

	b.history = []*Snapshot{b.snapshot(owned, name)}
	b.historyIndex = 0

	b.publish()
	b.moveActive(0)
}

// Loaded reports whether content has been loaded.
func (b *Buffer) Loaded() bool {
	return b.historyIndex >= 0
}

// Current returns the current snapshot, or nil when nothing is loaded.
func (b *Buffer) Current() *Snapshot {
	if !b.Loaded() {
		return nil
	}
	return b.history[b.historyIndex]
}

// Len returns the length of the current content.
func (b *Buffer) Len() int {
	return b.Current().Len()
}

// ActiveOffset returns the active cursor offset.
func (b *Buffer) ActiveOffset() int {
	return b.activeOffset
}

// HistoryLen returns the number of retained snapshots.
func (b *Buffer) HistoryLen() int {
	return len(b.history)
}

// HistoryIndex returns the index of the current snapshot, or -1 when nothing is loaded.
func (b *Buffer) HistoryIndex() int {
	return b.historyIndex
}

// CanUndo reports whether Undo would succeed.
func (b *Buffer) CanUndo() bool {
	return b.historyIndex > 0
}

// CanRedo reports whether Redo would succeed.
func (b *Buffer) CanRedo() bool {
	return b.historyIndex >= 0 && b.historyIndex < len(b.history)-1
}

// Edit copies the current content, applies mutator to the copy and commits the
// result as a new snapshot. Returns false when nothing is loaded.
func (b *Buffer) Edit(mutator func(data []byte)) bool {
	current := b.Current()
	if current == nil {
		return false
	}

	working := append([]byte{}, current.Data...)
	mutator(working)

	b.commit(working)
	b.moveActive(b.activeOffset)

	return true
}

// Insert inserts ins at offset, clamped to [0, Len()], and moves the active
// offset there. Returns false when nothing is loaded or ins is empty.
func (b *Buffer) Insert(offset int, ins []byte) bool {
	current := b.Current()
	if current == nil || len(ins) == 0 {
		return false
	}

	offset = clamp(offset, 0, current.Len())

	working := make([]byte, 0, current.Len()+len(ins))
	working = append(working, current.Data[:offset]...)
	working = append(working, ins...)
	working = append(working, current.Data[offset:]...)

	b.commit(working)
	b.moveActive(offset)

	return true
}

// Delete removes up to count bytes starting at offset. The range is clamped to
// the content; returns false when it is empty or nothing is loaded.
func (b *Buffer) Delete(offset, count int) bool {
	current := b.Current()
	if current == nil || count <= 0 {
		return false
	}

	start := clamp(offset, 0, current.Len())
	end := clamp(offset+count, start, current.Len())
	if start == end {
		return false
	}

	working := make([]byte, 0, current.Len()-(end-start))
	working = append(working, current.Data[:start]...)
	working = append(working, current.Data[end:]...)

	b.commit(working)
	b.moveActive(start)

	return true
}

// SetNibble replaces the high or low four bits of the byte at offset with value.
// Returns false when nothing is loaded, the offset is out of range, value is not
// a nibble, or the byte would not change.
func (b *Buffer) SetNibble(offset int, high bool, value byte) bool {
	current := b.Current()
	if current == nil || offset < 0 || offset >= current.Len() || value > nibbleMask {
		return false
	}

	old := current.Data[offset]
	var updated byte
	if high {
		updated = old&nibbleMask | value<<4
	} else {
		updated = old&^nibbleMask | value
	}

	if updated == old {
		return false
	}

	return b.Edit(func(data []byte) {
		data[offset] = updated
	})
}

// ApplyEdits validates a batch of edits against the current content and commits
// them as a single snapshot. An empty batch is a no-op.
func (b *Buffer) ApplyEdits(edits []patch.ByteEdit) error {
	current := b.Current()
	if current == nil {
		return ErrNotLoaded
	}
	if len(edits) == 0 {
		return nil
	}

	prepared, err := patch.PrepareEdits(edits, current.Len())
	if err != nil {
		return err
	}

	b.commit(patch.ApplyEdits(current.Data, prepared))
	b.moveActive(b.activeOffset)

	return nil
}

// Undo moves back one snapshot. Returns false when there is nothing to undo.
func (b *Buffer) Undo() bool {
	if !b.CanUndo() {
		return false
	}

	b.historyIndex--
	b.publish()
	b.moveActive(b.activeOffset)

	return true
}

// Redo moves forward one snapshot. Returns false when there is nothing to redo.
func (b *Buffer) Redo() bool {
	if !b.CanRedo() {
		return false
	}

	b.historyIndex++
	b.publish()
	b.moveActive(b.activeOffset)

	return true
}

// SetActiveOffset moves the active offset, clamped to [0, Len()-1] or 0 when empty.
func (b *Buffer) SetActiveOffset(offset int) {
	b.moveActive(offset)
}

// commit truncates any redo branch and pushes data as the new current snapshot.
func (b *Buffer) commit(data []byte) {
	name := b.Current().Name

	b.history = append(b.history[:b.historyIndex+1], b.snapshot(data, name))
	b.historyIndex = len(b.history) - 1

	b.publish()
}

func (b *Buffer) snapshot(data []byte, name string) *Snapshot {
	return &Snapshot{
		Name:   name,
		Data:   data,
		Layout: jpegmap.ClassifyWithOptions(data, b.opts.Classify),
	}
}

func (b *Buffer) publish() {
	current := b.Current()
	for _, listener := range b.sortedListeners() {
		listener.SnapshotChanged(current)
	}
}

// moveActive clamps offset and notifies listeners when the active offset changes.
func (b *Buffer) moveActive(offset int) {
	clamped := 0
	if length := b.Len(); length > 0 {
		clamped = clamp(offset, 0, length-1)
	}

	if clamped == b.activeOffset {
		return
	}
	b.activeOffset = clamped

	for _, listener := range b.sortedListeners() {
		listener.ActiveOffsetChanged(clamped)
	}
}

// sortedListeners returns listeners in subscription order.
func (b *Buffer) sortedListeners() []Listener {
	if len(b.listeners) == 0 {
		return nil
	}

	out := make([]Listener, 0, len(b.listeners))
	for id := range b.nextID {
		if listener, ok := b.listeners[id]; ok {
			out = append(out, listener)
		}
	}
	return out
}

func clamp(value, low, high int) int {
	return max(low, min(value, high))
}
