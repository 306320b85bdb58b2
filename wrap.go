// wrap.go — plain displayable errors used as chain links.
//
// Scope:
//   - Basic: a leaf error that is nothing but a message.
//   - Wrap: a message interposed over an existing cause, exposing the cause
//     through Unwrap so stdlib traversal and the chain walk both see it.
//
// These are deliberately ordinary errors, not domain nodes: they carry no
// kind and no advice, so they render as opaque causes. Use them as the
// source of an *Error (or anywhere a std error is expected).
package humane

// Basic returns a plain error consisting solely of the given message.
//
//	humane.User(
//		humane.Basic("ENOENT 2: No such file or directory"),
//		"Make sure that the file exists and is readable by the application.",
//	)
func Basic(message string) error {
	return &messageErr{message: message}
}

// Wrap returns a plain error that presents message as its own text and
// exposes cause via Unwrap. A nil cause yields the same result as Basic.
//
//	humane.Wrap(ioErr, "We could not open the config file you provided.")
func Wrap(cause error, message string) error {
	return &messageErr{message: message, cause: cause}
}

// messageErr is the shared implementation behind Basic and Wrap.
type messageErr struct {
	message string
	cause   error
}

func (e *messageErr) Error() string { return e.message }

func (e *messageErr) Unwrap() error { return e.cause }

var _ error = (*messageErr)(nil)
