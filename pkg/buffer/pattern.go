package buffer

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// asciiPrefix marks a pattern given as literal text.
const asciiPrefix = "ascii:"

// ErrEmptyPattern is returned by ParsePattern for patterns with no bytes.
var ErrEmptyPattern = errors.New("empty pattern")

// ParsePattern converts a user-supplied pattern to bytes.
//
// Patterns starting with "ascii:" are taken literally. Anything else is parsed as
// hexadecimal; spaces, colons and an optional "0x" prefix are ignored, so
// "FF D8", "ff:d8" and "0xffd8" are equivalent.
func ParsePattern(s string) ([]byte, error) {
	if text, ok := strings.CutPrefix(s, asciiPrefix); ok {
		if text == "" {
			return nil, ErrEmptyPattern
		}
		return []byte(text), nil
	}

	cleaned := strings.NewReplacer(" ", "", ":", "", "\t", "").Replace(s)
	cleaned = strings.TrimPrefix(strings.TrimPrefix(cleaned, "0x"), "0X")
	if cleaned == "" {
		return nil, ErrEmptyPattern
	}

	if len(cleaned)%2 != 0 {
		return nil, fmt.Errorf("hex pattern %q has an odd number of digits", s)
	}

	out, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("parse hex pattern %q: %w", s, err)
	}

	return out, nil
}
