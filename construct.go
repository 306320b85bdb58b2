// construct.go — convenience constructors for the two error kinds.
//
// Scope:
//   - Thin, always-succeeding wrappers over New for the common call shapes:
//     classify an existing error, or interpose a message over a deeper cause
//     and classify the result.
//   - No validation, no policy; construction is pure assembly.
package humane

// User builds a user-caused error around source.
//
//	humane.User(
//		humane.Basic("open demo.yml: no such file or directory"),
//		"Make sure that the file exists and is readable by the application.",
//	)
func User(source error, advice ...string) *Error {
	return New(source, KindUser, advice...)
}

// System builds a system-caused error around source.
//
//	humane.System(
//		err,
//		"Please file a bug report including the error details below.",
//	)
func System(source error, advice ...string) *Error {
	return New(source, KindSystem, advice...)
}

// WrapUser interposes message over cause and builds a user-caused error
// from the result. The message becomes the node's description; cause becomes
// the first entry of its causal chain.
//
//	humane.WrapUser(
//		err,
//		"We could not open the config file you provided.",
//		"Make sure that you've specified a valid config file with the --config option.",
//	)
func WrapUser(cause error, message string, advice ...string) *Error {
	return New(Wrap(cause, message), KindUser, advice...)
}

// WrapSystem interposes message over cause and builds a system-caused error
// from the result.
func WrapSystem(cause error, message string, advice ...string) *Error {
	return New(Wrap(cause, message), KindSystem, advice...)
}
