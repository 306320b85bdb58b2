// format.go — fmt.Formatter integration for *Error.
//
// Behavior:
//
//	%s, %v → the composed plain Message()
//	%q     → quoted Message()
//	%+v    → the pretty, box-drawn rendering (same as Pretty)
//
// Write errors are ignored in formatting paths.
package humane

import (
	"fmt"
	"io"
)

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, Pretty(e).String())
			return
		}
		_, _ = io.WriteString(s, e.Message())
	case 's':
		_, _ = io.WriteString(s, e.Message())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Message())
	default:
		_, _ = io.WriteString(s, e.Message())
	}
}

var _ fmt.Formatter = (*Error)(nil)
