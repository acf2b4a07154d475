// Package buffer implements the copy-on-write edit buffer used by the jpglitch hosts.
// Every accepted mutation produces a new immutable Snapshot holding the bytes and the
// layout recomputed by jpegmap. Snapshots form a linear undo/redo history; committing
// after an undo discards the redo branch.
package buffer

import "github.com/yaklabco/jpglitch/pkg/jpegmap"

// Snapshot is an immutable view of the buffer at one point in history.
// Neither Data nor Layout may be modified after publication.
type Snapshot struct {
	// Name is the display name given at load time (usually the file path).
	Name string

	// Data is the full byte content.
	Data []byte

	// Layout is the per-byte region layout, or nil when the content is not recognized.
	Layout *jpegmap.Layout
}

// Len returns the number of bytes in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Data)
}

// RegionAt returns the region of the byte at offset.
func (s *Snapshot) RegionAt(offset int) jpegmap.Region {
	if s == nil {
		return jpegmap.Unknown
	}
	return s.Layout.RegionAt(offset)
}

// Recognized reports whether the content was classified as JPEG.
func (s *Snapshot) Recognized() bool {
	return s != nil && s.Layout != nil
}

// Listener receives buffer state changes. Calls are synchronous and happen after
// the change is visible through the Buffer accessors.
type Listener interface {
	// SnapshotChanged is called when a new snapshot becomes current through load,
	// a committed mutation, undo or redo.
	SnapshotChanged(snapshot *Snapshot)

	// ActiveOffsetChanged is called when the active offset moves.
	ActiveOffsetChanged(offset int)
}
