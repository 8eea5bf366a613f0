package render

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const sgrReset = "\x1b[0m"

// Palette entries 0-7 map onto the classic 30-37 foreground codes so that
// the output follows the terminal's own color scheme.
var basicForeground = map[tcell.Color]int{
	tcell.ColorBlack:  30,
	tcell.ColorMaroon: 31,
	tcell.ColorGreen:  32,
	tcell.ColorOlive:  33,
	tcell.ColorNavy:   34,
	tcell.ColorPurple: 35,
	tcell.ColorTeal:   36,
	tcell.ColorSilver: 37,
}

// sgrSequence converts style into an ANSI select-graphic-rendition escape.
// It returns "" for a style that changes nothing.
func sgrSequence(style tcell.Style) string {
	fg, _, attrs := style.Decompose()

	var params []string
	if attrs&tcell.AttrBold != 0 {
		params = append(params, "1")
	}
	if attrs&tcell.AttrDim != 0 {
		params = append(params, "2")
	}
	if attrs&tcell.AttrItalic != 0 {
		params = append(params, "3")
	}
	if attrs&tcell.AttrUnderline != 0 {
		params = append(params, "4")
	}
	if fg != tcell.ColorDefault && fg != tcell.ColorReset && fg.Valid() {
		if code, ok := basicForeground[fg]; ok {
			params = append(params, strconv.Itoa(code))
		} else {
			r, g, b := fg.RGB()
			params = append(params, "38;2;"+strconv.Itoa(int(r))+";"+strconv.Itoa(int(g))+";"+strconv.Itoa(int(b)))
		}
	}

	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}
