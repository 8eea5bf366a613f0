package app

import (
	"strconv"
	"strings"

	"golang.org/x/term"
)

// DefaultWidth is used when neither the terminal nor COLUMNS report a width.
const DefaultWidth = 80

type sizeFunc func(fd int) (width, height int, err error)

// TerminalWidth reports the column count of the terminal on fd. A failed or
// non-positive query falls back to $COLUMNS and then to DefaultWidth; the
// failure itself is only logged.
func TerminalWidth(fd int) int {
	return terminalWidthInternal(fd, term.GetSize, envLookup)
}

func terminalWidthInternal(fd int, getSize sizeFunc, getenv func(string) string) int {
	width, _, err := getSize(fd)
	if err == nil && width > 0 {
		return width
	}
	if err != nil {
		debugf("terminal size query failed: %v", err)
	}

	if cols := strings.TrimSpace(getenv("COLUMNS")); cols != "" {
		if n, convErr := strconv.Atoi(cols); convErr == nil && n > 0 {
			debugf("using COLUMNS=%d", n)
			return n
		}
		debugf("ignoring invalid COLUMNS=%q", cols)
	}

	debugf("using default width %d", DefaultWidth)
	return DefaultWidth
}

// shouldColorize resolves mode against the output device and NO_COLOR.
func shouldColorize(mode ColorMode, fd int, isTerminal func(int) bool, getenv func(string) string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(fd)
}
