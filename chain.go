// chain.go — causal-chain traversal and the cause/message aggregation.
//
// Scope:
//   - Walk the source chain of an *Error (classic Unwrap traversal) and
//     classify each step as either a domain node or an opaque foreign error.
//   - Produce the ordered cause descriptions and the composed plain message.
//
// Traversal semantics:
//   - The chain is a simple finite path (one outgoing cause per node), so a
//     plain loop terminates; no cycle guard is needed.
//   - Steps are classified with a direct type assertion, not errors.As: the
//     question at each step is "is THIS link one of ours", not "does anything
//     below it match".
package humane

import (
	"errors"
	"strings"
)

// causeStep is one link of a causal chain, classified once per step so the
// consumers (CausedBy, Advice, the renderer) never repeat the type check.
// Exactly one view applies: node is non-nil for domain errors, otherwise the
// step is an opaque displayable error.
type causeStep struct {
	node *Error
	err  error
}

// stepOf classifies a single chain link.
func stepOf(err error) causeStep {
	if node, ok := err.(*Error); ok {
		return causeStep{node: node, err: err}
	}
	return causeStep{err: err}
}

// text returns the human-readable content of the step: the resolved
// Description for domain nodes, the plain Error text otherwise.
func (s causeStep) text() string {
	if s.node != nil {
		return s.node.Description()
	}
	return s.err.Error()
}

// CausedBy returns one description per cause in the chain below this node,
// ordered from the immediate cause outward to the deepest cause. This is the
// natural reading order for a "this was caused by" listing, so the sequence
// is not reversed.
func (e *Error) CausedBy() []string {
	var causes []string
	for cur := e.Unwrap(); cur != nil; cur = errors.Unwrap(cur) {
		causes = append(causes, stepOf(cur).text())
	}
	return causes
}

// Message composes the full plain-text presentation of this error: the
// kind-templated hero line, the cause listing, and the aggregated advice.
// Sections are omitted when empty; a node with no causes and no advice
// yields the hero line alone.
//
//	Oh no! We could not open the config file you provided.
//
//	This was caused by:
//	 - open /home/user/.config/demo.yml: no such file or directory
//
//	To try and fix this, you can:
//	 - Make sure that the file exists and is readable by the application.
func (e *Error) Message() string {
	var b strings.Builder
	b.WriteString(e.kind.heroMessage(e.Description()))

	if causes := e.CausedBy(); len(causes) > 0 {
		b.WriteString("\n\nThis was caused by:")
		for _, cause := range causes {
			b.WriteString("\n - ")
			b.WriteString(cause)
		}
	}

	if advice := e.Advice(); len(advice) > 0 {
		b.WriteString("\n\nTo try and fix this, you can:")
		for _, tip := range advice {
			b.WriteString("\n - ")
			b.WriteString(tip)
		}
	}

	return b.String()
}
