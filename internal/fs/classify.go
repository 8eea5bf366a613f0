package fs

import (
	"os"
	"path/filepath"
)

// Prober reads entry metadata without following symlinks.
type Prober interface {
	Lstat(name string) (os.FileInfo, error)
}

type dirProber string

// DirProber returns a Prober resolving names relative to dir.
func DirProber(dir string) Prober {
	return dirProber(dir)
}

func (d dirProber) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(filepath.Join(string(d), name))
}

// Classify builds an Entry for rawName. The returned entry is always usable:
// when metadata cannot be read it falls back to KindFile and the probe error
// is returned alongside it.
func Classify(rawName string, probe Prober) (Entry, error) {
	entry := Entry{
		Name:   rawName,
		Kind:   KindFile,
		Hidden: IsHidden(rawName),
	}
	if rawName == "" || probe == nil {
		return entry, nil
	}

	info, err := probe.Lstat(rawName)
	if err != nil {
		return entry, err
	}
	entry.Kind = KindFromMode(info.Mode())
	return entry, nil
}
