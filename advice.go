// advice.go — aggregation of remediation advice across a causal chain.
//
// Ordering rationale:
//   - The deepest error is the most specific one, and the most specific error
//     is the most likely to carry the advice that actually fixes the problem.
//     Aggregation therefore collects top-down and reverses, so users read the
//     deepest advice first.
//   - Mid-level wrappers commonly repeat advice already given at a deeper
//     level; repeating it is noise, so later duplicates are dropped while the
//     first (deepest) occurrence keeps its position.
package humane

import "errors"

// Advice returns the aggregated remediation advice for the whole chain:
// each domain node's directly declared advice, deepest cause first, with
// duplicate strings removed by first occurrence. The accumulated list is
// reversed as a whole, so within a single node advice declared later is
// presented earlier.
//
// Only nodes of this package contribute; opaque foreign links in the chain
// carry no advice and are skipped.
func (e *Error) Advice() []string {
	acc := make([]string, 0, len(e.advice))
	acc = append(acc, e.advice...)

	// The walk starts AT the proximate source rather than below it, so a
	// transparent domain wrap still contributes its own advice. Domain nodes
	// are stepped through via their source, not their Unwrap: a node's Unwrap
	// already descends past its source, which would skip directly nested
	// domain nodes.
	for cur := e.source; cur != nil; {
		if s := stepOf(cur); s.node != nil {
			acc = append(acc, s.node.advice...)
			cur = s.node.source
			continue
		}
		cur = errors.Unwrap(cur)
	}

	reverseAdvice(acc)
	return dedupeAdvice(acc)
}

// reverseAdvice flips the accumulated list in place, turning the top-down
// collection order into deepest-first presentation order.
func reverseAdvice(advice []string) {
	for i, j := 0, len(advice)-1; i < j; i, j = i+1, j-1 {
		advice[i], advice[j] = advice[j], advice[i]
	}
}

// dedupeAdvice drops later duplicates, preserving first-occurrence order.
func dedupeAdvice(advice []string) []string {
	if len(advice) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(advice))
	out := make([]string, 0, len(advice))
	for _, tip := range advice {
		if _, dup := seen[tip]; dup {
			continue
		}
		seen[tip] = struct{}{}
		out = append(out, tip)
	}
	return out
}
