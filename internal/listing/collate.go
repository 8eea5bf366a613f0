package listing

import (
	"sort"
	"strings"

	fsutil "github.com/kk-code-lab/rls/internal/fs"
)

// SortKey returns the case-insensitive ordering key for e. A hidden entry
// loses exactly one leading dot; "." and ".." sort by their literal names.
func SortKey(e fsutil.Entry) string {
	name := e.Name
	if e.Hidden && name != "." && name != ".." {
		name = strings.TrimPrefix(name, ".")
	}
	return strings.ToLower(name)
}

// Sort orders entries by SortKey. Entries with equal keys keep their
// relative (filesystem) order.
func Sort(entries []fsutil.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return SortKey(entries[i]) < SortKey(entries[j])
	})
}
