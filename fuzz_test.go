// fuzz_test.go — aggregation and rendering must not fail for any finite input.
package humane

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// plainWrappable reports whether s is printable ASCII in normalized
// single-space form with every word short enough for the narrowest wrap
// budget. Only such inputs guarantee the fixed-width line invariants; the
// renderer still must not fail for anything else.
func plainWrappable(s string) bool {
	for _, r := range s {
		if r < ' ' || r > '~' {
			return false
		}
	}
	if s != strings.Join(strings.Fields(s), " ") {
		return false
	}
	for _, word := range strings.Fields(s) {
		if len(word) > defaultRenderWidth-labelWidth {
			return false
		}
	}
	return true
}

func FuzzMessage(f *testing.F) {
	f.Add("Something bad happened.", "Avoid bad things happening in future", byte(0))
	f.Add("", "", byte(1))
	f.Add("multi\nline\ndescription", "tip with trailing space ", byte(2))

	f.Fuzz(func(t *testing.T, description, tip string, kindByte byte) {
		kind := KindUser
		if kindByte%2 == 1 {
			kind = KindSystem
		}
		err := New(Wrap(Basic(description), description), kind, tip)

		msg := err.Message()
		if kind == KindUser && !strings.HasPrefix(msg, "Oh no! ") {
			t.Fatalf("user hero line missing: %q", msg)
		}
		if kind == KindSystem && !strings.HasPrefix(msg, "Whoops! ") {
			t.Fatalf("system hero line missing: %q", msg)
		}
		if !strings.Contains(msg, "To try and fix this, you can:") {
			t.Fatalf("advice section missing: %q", msg)
		}
	})
}

func FuzzPretty(f *testing.F) {
	f.Add("Something bad happened.", "Avoid bad things happening in future")
	f.Add("", "")
	f.Add(strings.Repeat("long-unbroken-word", 20), "tab\tand\ncontrol")

	f.Fuzz(func(t *testing.T, description, tip string) {
		err := WrapUser(System(Basic(description), tip), description, tip)
		out := Pretty(err, WithColorProfile(termenv.Ascii)).String()

		if !strings.HasSuffix(out, "\n") {
			t.Fatalf("rendering does not end with a newline: %q", out)
		}
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		if !strings.HasPrefix(lines[0], "error(usr):") {
			t.Fatalf("head line missing: %q", lines[0])
		}

		// The alignment invariants only hold for content the word wrapper
		// can actually keep within budget.
		if !plainWrappable(description) || !plainWrappable(tip) {
			return
		}
		for i, line := range lines {
			if line == "" || line == "│" {
				continue
			}
			if got := runewidth.StringWidth(line); got != defaultRenderWidth {
				t.Fatalf("line %d has visible width %d: %q", i, got, line)
			}
		}
	})
}
