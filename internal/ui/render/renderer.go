package render

import (
	"strings"

	fsutil "github.com/kk-code-lab/rls/internal/fs"
	"github.com/kk-code-lab/rls/internal/listing"
	textutil "github.com/kk-code-lab/rls/internal/textutil"
)

// Renderer turns a planned grid into printable lines.
type Renderer struct {
	theme    ColorTheme
	colorize bool
	prefixes map[fsutil.Kind]string
}

// NewRenderer creates a renderer. With colorize disabled no escape sequences
// are emitted at all.
func NewRenderer(colorize bool) *Renderer {
	r := &Renderer{
		theme:    GetColorTheme(),
		colorize: colorize,
		prefixes: make(map[fsutil.Kind]string),
	}
	for kind := fsutil.KindFile; kind <= fsutil.KindSymlink; kind++ {
		r.prefixes[kind] = sgrSequence(r.theme.StyleFor(kind))
	}
	return r
}

// Render returns one line per grid row. Each cell is padded on its visible
// width to the column width plus the separator; escape bytes never count.
func (r *Renderer) Render(grid listing.Grid) []string {
	if grid.Rows <= 0 || len(grid.Columns) == 0 {
		return nil
	}

	lines := make([]string, grid.Rows)
	var b strings.Builder
	for row := 0; row < grid.Rows; row++ {
		b.Reset()
		for _, col := range grid.Columns {
			if row >= len(col.Entries) {
				break
			}
			r.writeCell(&b, col.Entries[row], col.Width+listing.Separator)
		}
		lines[row] = b.String()
	}
	return lines
}

func (r *Renderer) writeCell(b *strings.Builder, e fsutil.Entry, cellWidth int) {
	label := listing.Label(e)
	prefix := r.colorPrefix(e.Kind)
	if prefix == "" {
		b.WriteString(textutil.PadRight(label, cellWidth))
		return
	}
	b.WriteString(prefix)
	b.WriteString(label)
	b.WriteString(sgrReset)
	// PadRight only appends spaces, so the tail past the label is the padding.
	padded := textutil.PadRight(label, cellWidth)
	b.WriteString(padded[len(label):])
}

func (r *Renderer) colorPrefix(kind fsutil.Kind) string {
	if !r.colorize {
		return ""
	}
	return r.prefixes[kind]
}
