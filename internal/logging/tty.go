package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fdWriter is satisfied by os.File and any writer wrapping a descriptor.
type fdWriter interface {
	Fd() uintptr
}

// IsTTY reports whether the writer is backed by a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI escape sequences are safe to write.
// Color is disabled when the writer is not a TTY, when NO_COLOR is set
// (https://no-color.org), or when TERM=dumb.
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
