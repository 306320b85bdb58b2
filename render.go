// render.go — fixed-width, box-drawn terminal presentation of an error chain.
//
// Layout (80 columns by default):
//
//	error(usr):    We could not open the config file you provided.
//	│
//	├─ cause(usr): No file exists at /home/user/.config/demo.yml
//	│
//	╰────── cause: open /home/user/.config/demo.yml: no such file or directory
//
//	╭─ Advice ─────────────────────────────────────────────────────────────╮
//	│ • Make sure that the file exists and is readable by the application  │
//	╰──────────────────────────────────────────────────────────────────────╯
//
// Invariants:
//   - Word wrapping breaks at whitespace only, never mid-word.
//   - Every wrapped line is padded with spaces to its column budget before a
//     suffix (right border) is appended, so borders align vertically.
//   - Styling is applied AFTER wrapping and measuring, so the padding math
//     only ever sees plain text.
//   - Output is deterministic for identical input and color profile.
package humane

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

const (
	// defaultRenderWidth is the target column width of the rendered output.
	defaultRenderWidth = 80

	// labelWidth is the column where wrapped text starts: head and cause
	// labels are all padded to this width so continuation lines align.
	labelWidth = 15
)

// Renderer formats a single error chain at a fixed target width. It performs
// no I/O and cannot fail for any finite input; build one with Pretty.
type Renderer struct {
	err    *Error
	width  int
	styles renderStyles
}

// renderStyles carries the lipgloss styles used by one rendering pass.
type renderStyles struct {
	user   lipgloss.Style // "usr" kind tag
	system lipgloss.Style // "sys" kind tag
	glyph  lipgloss.Style // connectors and box borders
	text   lipgloss.Style // wrapped description text
	title  lipgloss.Style // advice box title
}

func stylesFrom(lr *lipgloss.Renderer) renderStyles {
	return renderStyles{
		user:   lr.NewStyle().Foreground(lipgloss.Color("3")),
		system: lr.NewStyle().Foreground(lipgloss.Color("1")),
		glyph:  lr.NewStyle().Foreground(lipgloss.Color("8")),
		text:   lr.NewStyle().Foreground(lipgloss.Color("15")),
		title:  lr.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// RenderOption customizes a Renderer built by Pretty.
type RenderOption func(*Renderer)

// WithWidth overrides the target column width. Widths below twice the label
// column are clamped, keeping at least a minimal wrap budget.
func WithWidth(width int) RenderOption {
	return func(r *Renderer) {
		if width < 2*labelWidth {
			width = 2 * labelWidth
		}
		r.width = width
	}
}

// WithColorProfile pins the color profile instead of auto-detecting from the
// environment. Use termenv.Ascii for style-free output.
func WithColorProfile(profile termenv.Profile) RenderOption {
	return func(r *Renderer) {
		lr := lipgloss.NewRenderer(io.Discard)
		lr.SetColorProfile(profile)
		r.styles = stylesFrom(lr)
	}
}

// Pretty returns a displayable, terminal-formatted representation of err:
// a tagged head line, the causal chain drawn with tree connectors, and the
// aggregated advice in a titled box.
//
//	fmt.Println(humane.Pretty(err))
func Pretty(err *Error, opts ...RenderOption) *Renderer {
	r := &Renderer{
		err:    err,
		width:  defaultRenderWidth,
		styles: stylesFrom(lipgloss.DefaultRenderer()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// String renders the error chain. A nil error renders as the empty string.
func (r *Renderer) String() string {
	if r.err == nil {
		return ""
	}
	var b strings.Builder
	r.writeHead(&b)
	r.writeCauses(&b)
	r.writeAdviceBox(&b)
	return b.String()
}

// writeHead emits the kind-tagged first line and the wrapped description.
func (r *Renderer) writeHead(b *strings.Builder) {
	b.WriteString("error(")
	b.WriteString(r.tag(r.err.kind))
	// Pads the label out to labelWidth columns.
	b.WriteString("):    ")
	r.writeWrapped(b, r.err.Description(), r.width-labelWidth,
		lineDecor{}, lineDecor{prefix: r.continuation()})
}

// writeCauses walks the chain and emits one connector-labelled entry per
// cause: a branch connector while more causes follow, a terminal connector on
// the last one, and a kind tag whenever the cause is a domain node.
func (r *Renderer) writeCauses(b *strings.Builder) {
	for cur := r.err.Unwrap(); cur != nil; {
		b.WriteString(r.styles.glyph.Render("│"))
		b.WriteByte('\n')

		next := errors.Unwrap(cur)
		connector := "├─"
		if next == nil {
			connector = "╰─"
		}

		step := stepOf(cur)
		if step.node != nil {
			b.WriteString(r.styles.glyph.Render(connector))
			b.WriteString(" cause(")
			b.WriteString(r.tag(step.node.kind))
			b.WriteString("): ")
		} else {
			b.WriteString(r.styles.glyph.Render(connector + strings.Repeat("─", 5)))
			b.WriteString(" cause: ")
		}
		r.writeWrapped(b, step.text(), r.width-labelWidth,
			lineDecor{}, lineDecor{prefix: r.continuation()})

		cur = next
	}
}

// writeAdviceBox emits the titled advice box, or nothing when the aggregated
// advice list is empty.
func (r *Renderer) writeAdviceBox(b *strings.Builder) {
	advice := r.err.Advice()
	if len(advice) == 0 {
		return
	}
	b.WriteByte('\n')
	content := " • " + strings.Join(advice, "\n • ")
	r.writeBox(b, "Advice", content, roundBox)
}

// tag renders the short kind tag in its kind-specific color.
func (r *Renderer) tag(k Kind) string {
	if k == KindSystem {
		return r.styles.system.Render(k.tag())
	}
	return r.styles.user.Render(k.tag())
}

// continuation is the prefix re-indenting wrapped lines under the label column.
func (r *Renderer) continuation() string {
	return r.styles.glyph.Render("│") + strings.Repeat(" ", labelWidth-1)
}

// lineDecor is the per-line decoration applied around wrapped content.
type lineDecor struct {
	prefix string
	suffix string
}

// writeWrapped word-wraps content to the given column budget and emits one
// decorated line per chunk. The first chunk gets first's decoration (it
// usually continues an already-written label); the rest get rest's. Each
// chunk is padded to the budget before the suffix so right borders align.
func (r *Renderer) writeWrapped(b *strings.Builder, content string, budget int, first, rest lineDecor) {
	for i, line := range strings.Split(wordwrap.String(content, budget), "\n") {
		decor := rest
		if i == 0 {
			decor = first
		}
		b.WriteString(decor.prefix)
		b.WriteString(r.styles.text.Render(line))
		if pad := budget - runewidth.StringWidth(line); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(decor.suffix)
		b.WriteByte('\n')
	}
}

var _ interface{ String() string } = (*Renderer)(nil)
