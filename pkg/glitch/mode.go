package glitch

import (
	"fmt"
	"slices"
)

// Mode selects how a chosen byte is rewritten.
type Mode string

const (
	// ModeRandomize replaces the byte with a random value.
	ModeRandomize Mode = "randomize"

	// ModeShift adds Options.Delta to the byte, wrapping at 256.
	ModeShift Mode = "shift"

	// ModeInvert flips every bit of the byte.
	ModeInvert Mode = "invert"

	// ModeZero clears the byte.
	ModeZero Mode = "zero"
)

// Modes returns every supported mode.
func Modes() []Mode {
	return []Mode{ModeRandomize, ModeShift, ModeInvert, ModeZero}
}

// IsValid reports whether m is a supported mode.
func (m Mode) IsValid() bool {
	return slices.Contains(Modes(), m)
}

// ParseMode converts a name to a Mode.
func ParseMode(name string) (Mode, error) {
	mode := Mode(name)
	if !mode.IsValid() {
		return "", fmt.Errorf("unknown glitch mode %q (valid: %v)", name, Modes())
	}
	return mode, nil
}
