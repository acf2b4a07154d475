package pretty

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultTermWidth is used when the terminal width cannot be determined.
const DefaultTermWidth = 100

// TerminalWidth returns the column count of w when it is a terminal,
// or DefaultTermWidth otherwise.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return DefaultTermWidth
}
