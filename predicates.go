// predicates.go — nil-safe classification checks over arbitrary errors.
//
// Scope:
//   - Answer "was this the user's fault?" for ANY error value, not just an
//     *Error in hand: traversal uses errors.As so a domain node buried under
//     foreign wrapping layers is still found.
//
// Contrast with (*Error).Is/IsUser/IsSystem, which inspect a known node
// without traversal.
package humane

import "errors"

// KindOf returns the kind of the nearest domain error in err's chain.
// The second result is false when the chain contains no domain error.
func KindOf(err error) (Kind, bool) {
	if err == nil {
		return 0, false
	}
	var node *Error
	if errors.As(err, &node) {
		return node.kind, true
	}
	return 0, false
}

// IsUserError reports whether err is (or wraps) a user-caused domain error.
func IsUserError(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindUser
}

// IsSystemError reports whether err is (or wraps) a system-caused domain error.
func IsSystemError(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindSystem
}
