// Package input opens puzzle input sources: files, or stdin when the path
// is "-".
package input

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// Stdin is the path that selects standard input
const Stdin = "-"

// ErrInteractiveStdin is returned when stdin is a terminal rather than a
// pipe or file.
var ErrInteractiveStdin = errors.New("stdin is a terminal; pipe the input or pass a file path")

var stdin io.ReadCloser = os.Stdin

// Open returns a reader for path. The caller closes it.
func Open(path string) (io.ReadCloser, error) {
	if path != Stdin {
		return os.Open(path)
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, ErrInteractiveStdin
	}
	return io.NopCloser(stdin), nil
}
