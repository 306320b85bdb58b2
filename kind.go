// kind.go — the two error categories and their user-facing templates.
//
// Scope:
//   - Kind distinguishes errors caused by the user from errors caused by the
//     system, conceptually similar to HTTP status codes (4xx vs 5xx).
//   - The hero template (the top line of Message output) lives here so every
//     presentation path renders a Kind the same way.
//
// Out of scope (by design):
//   - Severity levels, machine-readable codes, localization.
package humane

// Kind classifies an error as user-caused or system-caused.
//
// There are exactly two kinds. User errors are actionable by the caller and
// should carry advice guiding them to the correct interaction path. System
// errors are not the caller's fault; their advice should guide the user
// toward raising a useful bug report.
type Kind int

const (
	// KindUser marks an error which was the result of actions that the user
	// took. These are usually resolvable by the user changing how they
	// interact with the system.
	KindUser Kind = iota

	// KindSystem marks an error which was the result of the system failing
	// rather than the user's actions, e.g. a violated assumption or an
	// unexpected state.
	KindSystem
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindSystem:
		return "system"
	default:
		return "unknown"
	}
}

// tag returns the short form used by the pretty renderer's labels.
func (k Kind) tag() string {
	if k == KindSystem {
		return "sys"
	}
	return "usr"
}

// heroMessage applies the kind-specific template to a description, producing
// the top line of a composed message.
func (k Kind) heroMessage(description string) string {
	if k == KindSystem {
		return "Whoops! " + description + " (This isn't your fault)"
	}
	return "Oh no! " + description
}
