// error.go — the fundamental error type: kind + source + advice.
//
// Scope (tiny core):
//   - One immutable node in a causal chain, carrying a Kind, a wrapped
//     source error, and the remediation advice declared at this level.
//   - Read-only aggregation over the chain (Description/CausedBy/Advice/
//     Message) lives in chain.go and advice.go.
//
// Interop:
//   - Error() returns the full composed Message so a node dropped into any
//     generic error path still reads well.
//   - Unwrap() exposes the causal chain to errors.Is/As traversal.
//
// Notes:
//   - Nodes are immutable after construction; there is no mutation API.
//     Sharing a node across goroutines is safe as long as the wrapped source
//     errors are themselves safe to share.
package humane

import "errors"

// Error is an error which knows whether the user or the system is at fault,
// and what the user can do about it.
//
// Each Error wraps a source error (which may itself be another Error, or any
// foreign error such as a raw I/O failure) and carries an ordered list of
// remediation advice. Walking the source chain yields the full causal story;
// aggregating advice across the chain yields a single deduplicated list with
// the deepest (most specific) advice first.
//
// Construct values with New, User, System, WrapUser or WrapSystem:
//
//	err := humane.User(
//		humane.Basic("open /etc/demo.yml: no such file or directory"),
//		"Make sure that the file exists and is readable by the application.",
//	)
//	fmt.Println(err.Message())
type Error struct {
	kind   Kind
	source error
	advice []string
}

// New constructs a single error node wrapping source. Construction never
// fails; a nil source is normalized to a generic placeholder so the chain
// walk always terminates on a displayable value.
//
// The advice list is copied; callers may reuse or mutate their slice freely
// afterwards.
func New(source error, kind Kind, advice ...string) *Error {
	if source == nil {
		source = Basic("unknown error")
	}
	owned := make([]string, len(advice))
	copy(owned, advice)
	return &Error{
		kind:   kind,
		source: source,
		advice: owned,
	}
}

// Kind returns the classification of this error.
func (e *Error) Kind() Kind { return e.kind }

// Is reports whether this error is of the given kind.
//
// The signature is distinct from the stdlib errors.Is target hook, so the
// two do not interfere.
func (e *Error) Is(kind Kind) bool { return e.kind == kind }

// IsUser reports whether this error was caused by the user.
func (e *Error) IsUser() bool { return e.kind == KindUser }

// IsSystem reports whether this error was caused by the system.
func (e *Error) IsSystem() bool { return e.kind == KindSystem }

// Description returns the proximate text of this error.
//
// When the source is itself an *Error — a transparent wrap with no
// distinguishing message of its own — Description resolves recursively to the
// inner node's text, so the result is always the most specific non-wrapping
// content reachable at or above the wrap.
func (e *Error) Description() string {
	if inner, ok := e.source.(*Error); ok {
		return inner.Description()
	}
	return e.source.Error()
}

// Error returns the composed Message, so the node reads well when printed by
// code that knows nothing about this package.
func (e *Error) Error() string { return e.Message() }

// Unwrap returns the first cause below this node's proximate source. The
// node presents its source's text as its own (see Description), so the
// causal chain visible to errors.Is/As starts one step further down.
func (e *Error) Unwrap() error { return errors.Unwrap(e.source) }

// Interface conformance guards.
var (
	_ error                       = (*Error)(nil)
	_ interface{ Unwrap() error } = (*Error)(nil)
)
