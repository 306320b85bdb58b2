// shim.go — a thin wrapper for projects that want their own error type.
//
// Applications often expose a named error type of their own rather than this
// package's *Error directly, so that call sites read as yourapp.Error and
// conversions from third-party errors can hang off the project type. Shim is
// that wrapper: it forwards the read operations and stays a valid std error.
//
// Typical use — embed it in a project type and add conversions:
//
//	type AppError struct{ humane.Shim }
//
//	func fromParse(err error) AppError {
//		return AppError{humane.ShimWrapUser(err,
//			"We could not parse the number you provided.",
//			"Make sure that you're providing a number in the form 12345 or -12345.",
//		)}
//	}
package humane

// Shim wraps an *Error behind a small fixed surface. The zero Shim is not
// meaningful; build one with ShimUser, ShimSystem, ShimWrapUser,
// ShimWrapSystem or ShimOf.
type Shim struct {
	err *Error
}

// ShimOf wraps an existing node.
func ShimOf(err *Error) Shim { return Shim{err: err} }

// ShimUser builds a shim around a user-caused error.
func ShimUser(source error, advice ...string) Shim {
	return Shim{err: User(source, advice...)}
}

// ShimSystem builds a shim around a system-caused error.
func ShimSystem(source error, advice ...string) Shim {
	return Shim{err: System(source, advice...)}
}

// ShimWrapUser builds a shim around a message-wrapping user-caused error.
func ShimWrapUser(cause error, message string, advice ...string) Shim {
	return Shim{err: WrapUser(cause, message, advice...)}
}

// ShimWrapSystem builds a shim around a message-wrapping system-caused error.
func ShimWrapSystem(cause error, message string, advice ...string) Shim {
	return Shim{err: WrapSystem(cause, message, advice...)}
}

// Humane returns the wrapped node.
func (s Shim) Humane() *Error { return s.err }

// Description forwards to (*Error).Description.
func (s Shim) Description() string { return s.err.Description() }

// Message forwards to (*Error).Message.
func (s Shim) Message() string { return s.err.Message() }

// IsUser forwards to (*Error).IsUser.
func (s Shim) IsUser() bool { return s.err.IsUser() }

// IsSystem forwards to (*Error).IsSystem.
func (s Shim) IsSystem() bool { return s.err.IsSystem() }

// Error returns the composed message, keeping Shim a std error.
func (s Shim) Error() string { return s.err.Error() }

// Unwrap exposes the wrapped node, so errors.As and the package predicates
// see through the shim into the full chain.
func (s Shim) Unwrap() error { return s.err }

var _ error = Shim{}
