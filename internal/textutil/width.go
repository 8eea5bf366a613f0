package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth reports the number of terminal cells text occupies. Wide runes
// count as two cells and combining marks as zero.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadRight appends spaces to text until it spans width cells. Text that is
// already wider is returned unchanged.
func PadRight(text string, width int) string {
	pad := width - DisplayWidth(text)
	if pad <= 0 {
		return text
	}
	return text + strings.Repeat(" ", pad)
}
