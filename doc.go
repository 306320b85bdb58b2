// doc.go — package documentation for humane.
//
// Package humane provides errors which make your users' lives easier: every
// error is classified as user-caused or system-caused, carries a causal chain
// to the failure underneath it, and carries advice for how the user can
// respond to (and hopefully resolve) the failure.
//
// # Model
//
// An *Error is one node in a causal chain. It wraps a source error — which
// may be another *Error, or any foreign error such as a raw I/O failure — a
// Kind, and an ordered list of static advice strings:
//
//	err := humane.WrapUser(
//		ioErr,
//		"We could not open the config file you provided.",
//		"Make sure that you've specified a valid config file with the --config option.",
//	)
//
// Aggregation over the chain is read-only and recomputed on every call:
//
//   - Description() — the most specific non-wrapping text at this node.
//   - CausedBy()    — one description per cause, immediate cause first.
//   - Advice()      — every node's advice, deepest cause FIRST, deduplicated.
//
// Cause order and advice order are intentionally opposite: causes read
// naturally outward ("this was caused by ..."), while the deepest advice is
// the most specific and therefore the most likely fix, so it is presented
// first.
//
// # Presentation
//
// Two forms are provided, and calling code decides which to print:
//
//   - Message() — a plain, joined-text composition: a kind-templated hero
//     line ("Oh no! ..." / "Whoops! ... (This isn't your fault)"), the cause
//     listing, and the advice listing.
//   - Pretty()  — a fixed-width, word-wrapped, box-drawn terminal rendering
//     with connector glyphs per cause and the advice in a titled box.
//
// Println/Eprintln/Fprintln pick between the two based on whether the sink is
// a terminal. %v formats as Message, %+v as the pretty rendering.
//
// # Interop
//
// *Error is an ordinary error: Error() returns the composed message and
// Unwrap() exposes the causal chain, so errors.Is/As traversal and the
// predicates (IsUserError, IsSystemError, KindOf) work on wrapped values.
// FromIO and FromEncoding classify common platform failures into canned
// user/system errors with fixed advice.
//
// # Concurrency
//
// Nodes are immutable after construction and every operation is a pure
// function of its input, so chains may be shared and rendered concurrently
// without locking — provided the wrapped source errors are themselves safe
// to share, which is the caller's constraint to uphold.
//
// The core deliberately stops at text for humans: no machine-parsable codes,
// no localization, no retry policy.
package humane
