// box.go — box-drawing glyph sets and the titled-box writer.
package humane

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// boxChars is one consistent set of box-drawing glyphs.
type boxChars struct {
	topLeft     string
	top         string
	topRight    string
	left        string
	right       string
	bottomLeft  string
	bottom      string
	bottomRight string
}

// roundBox draws boxes with rounded corners.
var roundBox = boxChars{
	topLeft:     "╭",
	top:         "─",
	topRight:    "╮",
	left:        "│",
	right:       "│",
	bottomLeft:  "╰",
	bottom:      "─",
	bottomRight: "╯",
}

// writeBox emits a titled box at the renderer's full target width: a top
// border with the title embedded, each content line wrapped and side-bordered,
// and a bottom border. Every emitted line is exactly width columns wide.
func (r *Renderer) writeBox(b *strings.Builder, title, content string, chars boxChars) {
	// Top border: corner, edge, space, title, space, edge padding, corner.
	padding := r.width - runewidth.StringWidth(title) - 5
	if padding < 0 {
		padding = 0
	}
	b.WriteString(r.styles.glyph.Render(chars.topLeft + chars.top))
	b.WriteByte(' ')
	b.WriteString(r.styles.title.Render(title))
	b.WriteByte(' ')
	b.WriteString(r.styles.glyph.Render(strings.Repeat(chars.top, padding) + chars.topRight))
	b.WriteByte('\n')

	side := lineDecor{
		prefix: r.styles.glyph.Render(chars.left),
		suffix: r.styles.glyph.Render(chars.right),
	}
	for _, line := range strings.Split(content, "\n") {
		r.writeWrapped(b, line, r.width-2, side, side)
	}

	b.WriteString(r.styles.glyph.Render(
		chars.bottomLeft + strings.Repeat(chars.bottom, r.width-2) + chars.bottomRight,
	))
	b.WriteByte('\n')
}
