package fs

import "os"

// Kind identifies the filesystem object type of an entry.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindBlockDevice
	KindCharDevice
	KindFifo
	KindSocket
	KindSymlink
)

var kindNames = [...]string{
	KindFile:        "file",
	KindDirectory:   "directory",
	KindBlockDevice: "block device",
	KindCharDevice:  "char device",
	KindFifo:        "fifo",
	KindSocket:      "socket",
	KindSymlink:     "symlink",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Entry represents a single classified directory entry.
type Entry struct {
	Name   string
	Kind   Kind
	Hidden bool
}

// KindFromMode maps mode type bits to a Kind. The mode is expected to come
// from lstat, so a symlink is reported as such rather than as its target.
func KindFromMode(mode os.FileMode) Kind {
	switch {
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDirectory
	case mode&os.ModeCharDevice != 0:
		return KindCharDevice
	case mode&os.ModeDevice != 0:
		return KindBlockDevice
	case mode&os.ModeNamedPipe != 0:
		return KindFifo
	case mode&os.ModeSocket != 0:
		return KindSocket
	default:
		return KindFile
	}
}
