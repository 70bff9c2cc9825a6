// Package terminal probes the output terminal.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when a terminal does not report its size
const DefaultWidth = 80

// fd returns the file descriptor behind w, if w is a file.
func fd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	d, ok := fd(w)
	return ok && term.IsTerminal(d)
}

// GetWidth returns the width of the terminal behind w.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth(w io.Writer) int {
	d, ok := fd(w)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(d)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// TraceWidth returns the column budget for drawing a board on w, or 0 for
// no limit when w is not a terminal.
func TraceWidth(w io.Writer) int {
	if !IsTerminal(w) {
		return 0
	}
	return GetWidth(w)
}
