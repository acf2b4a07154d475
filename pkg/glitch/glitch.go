// Package glitch plans deliberate byte corruption of classified JPEG content.
//
// Plans only touch bytes in the requested regions and never produce a marker:
// 0xFF is never written, and neither a 0xFF byte nor the byte after one is
// chosen, so existing markers and stuffing pairs survive.
package glitch

import (
	"math/rand/v2"
	"slices"

	"github.com/yaklabco/jpglitch/pkg/buffer"
	"github.com/yaklabco/jpglitch/pkg/jpegmap"
	"github.com/yaklabco/jpglitch/pkg/patch"
)

const (
	// DefaultCount is the number of bytes changed when Options.Count is zero.
	DefaultCount = 16

	// markerPrefix is the byte that introduces a marker.
	markerPrefix = 0xFF

	// safeMax replaces values that would otherwise be written as markerPrefix.
	safeMax = 0xFE

	// streamSalt decorrelates the two PCG seed words.
	streamSalt = 0x9E3779B97F4A7C15
)

// Options configures a glitch plan.
type Options struct {
	// Mode selects the byte rewrite. Empty means ModeRandomize.
	Mode Mode

	// Count is the number of bytes to change. Zero means DefaultCount.
	Count int

	// Seed makes the plan reproducible.
	Seed uint64

	// Delta is added by ModeShift. Zero means 1.
	Delta byte

	// Regions restricts candidates. Empty means scan data only.
	Regions []jpegmap.Region
}

// DefaultOptions returns options for a small randomize pass over scan data.
func DefaultOptions() Options {
	return Options{
		Mode:    ModeRandomize,
		Count:   DefaultCount,
		Regions: []jpegmap.Region{jpegmap.ScanData},
	}
}

func (o Options) withDefaults() Options {
	if o.Mode == "" {
		o.Mode = ModeRandomize
	}
	if o.Count == 0 {
		o.Count = DefaultCount
	}
	if o.Delta == 0 {
		o.Delta = 1
	}
	if len(o.Regions) == 0 {
		o.Regions = []jpegmap.Region{jpegmap.ScanData}
	}
	return o
}

// Candidates returns the offsets that a plan with the given regions may change,
// in ascending order.
func Candidates(data []byte, layout *jpegmap.Layout, regions []jpegmap.Region) []int {
	if layout == nil || layout.Len() != len(data) {
		return nil
	}

	var offsets []int
	for offset, region := range layout.Regions {
		if !slices.Contains(regions, region) {
			continue
		}
		if data[offset] == markerPrefix {
			continue
		}
		if offset > 0 && data[offset-1] == markerPrefix {
			continue
		}
		offsets = append(offsets, offset)
	}
	return offsets
}

// Plan chooses up to Count distinct candidate bytes and returns sorted single-byte
// edits rewriting them. Bytes the mode would leave unchanged are omitted.
// The same data, layout and options always produce the same plan.
// Unrecognized content (nil layout) or an invalid mode yields no edits.
func Plan(data []byte, layout *jpegmap.Layout, opts Options) []patch.ByteEdit {
	opts = opts.withDefaults()
	if !opts.Mode.IsValid() || opts.Count < 0 {
		return nil
	}

	candidates := Candidates(data, layout, opts.Regions)
	if len(candidates) == 0 {
		return nil
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^streamSalt))

	// Partial Fisher-Yates: the first count entries become the sample.
	count := min(opts.Count, len(candidates))
	for idx := range count {
		swap := idx + rng.IntN(len(candidates)-idx)
		candidates[idx], candidates[swap] = candidates[swap], candidates[idx]
	}
	chosen := candidates[:count]
	slices.Sort(chosen)

	builder := patch.NewEditBuilder()
	for _, offset := range chosen {
		old := data[offset]
		updated := rewrite(old, opts, rng)
		if updated == old {
			continue
		}
		builder.SetByte(offset, updated)
	}

	return builder.Edits
}

func rewrite(value byte, opts Options, rng *rand.Rand) byte {
	var out byte
	switch opts.Mode {
	case ModeRandomize:
		out = byte(rng.UintN(safeMax + 1))
	case ModeShift:
		out = value + opts.Delta
	case ModeInvert:
		out = ^value
	case ModeZero:
		out = 0
	}

	if out == markerPrefix {
		out = safeMax
	}
	return out
}

// Apply plans a glitch against the buffer's current snapshot and commits it as a
// single undoable snapshot. It returns the number of bytes changed.
func Apply(buf *buffer.Buffer, opts Options) (int, error) {
	current := buf.Current()
	if current == nil {
		return 0, buffer.ErrNotLoaded
	}

	edits := Plan(current.Data, current.Layout, opts)
	if err := buf.ApplyEdits(edits); err != nil {
		return 0, err
	}

	return len(edits), nil
}
