package listing

import (
	fsutil "github.com/kk-code-lab/rls/internal/fs"
)

// Options controls which entries take part in the grid.
type Options struct {
	// ShowHidden keeps dot files in the listing.
	ShowHidden bool
	// ShowDotEntries adds the synthetic "." and ".." entries.
	ShowDotEntries bool
}

var dotEntries = []fsutil.Entry{
	{Name: ".", Kind: fsutil.KindDirectory, Hidden: true},
	{Name: "..", Kind: fsutil.KindDirectory, Hidden: true},
}

// Prepare applies the display policy to entries and returns them sorted.
// Filtering happens here, before planning, so hidden entries never leave
// holes in the grid. The input slice is not modified.
func Prepare(entries []fsutil.Entry, opts Options) []fsutil.Entry {
	out := make([]fsutil.Entry, 0, len(entries)+len(dotEntries))
	if opts.ShowDotEntries {
		out = append(out, dotEntries...)
	}
	for _, e := range entries {
		if e.Hidden && !opts.ShowHidden {
			continue
		}
		out = append(out, e)
	}
	Sort(out)
	return out
}
