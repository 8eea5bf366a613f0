package render

import (
	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/rls/internal/fs"
)

// ColorTheme holds the style used for each entry kind.
type ColorTheme struct {
	File        tcell.Style
	Directory   tcell.Style
	BlockDevice tcell.Style
	CharDevice  tcell.Style
	Fifo        tcell.Style
	Socket      tcell.Style
	Symlink     tcell.Style
}

// GetColorTheme returns the fixed listing palette.
func GetColorTheme() ColorTheme {
	bold := tcell.StyleDefault.Bold(true)
	return ColorTheme{
		File:        tcell.StyleDefault,
		Directory:   bold.Foreground(tcell.ColorNavy),
		BlockDevice: bold.Foreground(tcell.ColorOlive),
		CharDevice:  bold.Foreground(tcell.ColorOlive),
		Fifo:        tcell.StyleDefault.Foreground(tcell.ColorOlive),
		Socket:      bold.Foreground(tcell.ColorPurple),
		Symlink:     bold.Foreground(tcell.ColorTeal),
	}
}

// StyleFor returns the style for kind. Unknown kinds render as plain files.
func (t ColorTheme) StyleFor(kind fsutil.Kind) tcell.Style {
	switch kind {
	case fsutil.KindDirectory:
		return t.Directory
	case fsutil.KindBlockDevice:
		return t.BlockDevice
	case fsutil.KindCharDevice:
		return t.CharDevice
	case fsutil.KindFifo:
		return t.Fifo
	case fsutil.KindSocket:
		return t.Socket
	case fsutil.KindSymlink:
		return t.Symlink
	default:
		return t.File
	}
}
