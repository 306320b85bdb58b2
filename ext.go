// ext.go — ergonomic adapters for error-returning and comma-ok call sites.
//
// Scope:
//   - Nil-safe classification of an arbitrary error into a user or system
//     error (AsUser/AsSystem), optionally interposing a message
//     (WrapAsUser/WrapAsSystem).
//   - Comma-ok adapters (OkOrUser/OkOrSystem) for lookups that report
//     absence with a bool rather than an error.
//
// All helpers pass nil through untouched so they can be applied unconditionally
// on return paths.
package humane

// AsUser classifies err as user-caused, attaching the given advice.
// Returns nil when err is nil.
//
//	value, err := strconv.Atoi(input)
//	if err != nil {
//		return humane.AsUser(err, "Provide a number in the form 12345 or -12345.")
//	}
func AsUser(err error, advice ...string) *Error {
	if err == nil {
		return nil
	}
	return User(err, advice...)
}

// AsSystem classifies err as system-caused, attaching the given advice.
// Returns nil when err is nil.
func AsSystem(err error, advice ...string) *Error {
	if err == nil {
		return nil
	}
	return System(err, advice...)
}

// WrapAsUser interposes message over err and classifies the result as
// user-caused. Returns nil when err is nil.
func WrapAsUser(err error, message string, advice ...string) *Error {
	if err == nil {
		return nil
	}
	return WrapUser(err, message, advice...)
}

// WrapAsSystem interposes message over err and classifies the result as
// system-caused. Returns nil when err is nil.
func WrapAsSystem(err error, message string, advice ...string) *Error {
	if err == nil {
		return nil
	}
	return WrapSystem(err, message, advice...)
}

// OkOrUser adapts a comma-ok result, producing a user-caused error with the
// given message and advice when ok is false.
//
//	profile, ok := profiles[name]
//	profile, err := humane.OkOrUser(profile, ok, "No profile with that name exists.",
//		"Run 'demo profiles list' to see the available profiles.")
func OkOrUser[T any](value T, ok bool, message string, advice ...string) (T, error) {
	if ok {
		return value, nil
	}
	return value, User(Basic(message), advice...)
}

// OkOrSystem adapts a comma-ok result, producing a system-caused error with
// the given message and advice when ok is false.
func OkOrSystem[T any](value T, ok bool, message string, advice ...string) (T, error) {
	if ok {
		return value, nil
	}
	return value, System(Basic(message), advice...)
}
