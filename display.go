// display.go — convenience printers choosing pretty vs plain output.
//
// Terminals get the box-drawn rendering; pipes and files get the plain
// composed message so logs stay grep-friendly. The choice is per-sink, so an
// application with stdout piped and stderr on a TTY gets the right form on
// each.
package humane

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Println prints err to stdout: pretty when stdout is a terminal, the plain
// message otherwise. A nil err prints nothing.
func Println(err *Error) {
	Fprintln(os.Stdout, err)
}

// Eprintln prints err to stderr: pretty when stderr is a terminal, the plain
// message otherwise. A nil err prints nothing.
func Eprintln(err *Error) {
	Fprintln(os.Stderr, err)
}

// Fprintln prints err to w, rendering pretty only when w is a terminal.
// A nil err prints nothing.
func Fprintln(w io.Writer, err *Error) {
	if err == nil {
		return
	}
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		_, _ = fmt.Fprintln(w, Pretty(err))
		return
	}
	_, _ = fmt.Fprintln(w, err.Message())
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
