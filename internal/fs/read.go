package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrEnumerationFailed is wrapped by every error ReadDir returns.
var ErrEnumerationFailed = errors.New("cannot read directory")

// IssueKind classifies a recovered per-entry problem.
type IssueKind int

const (
	IssueMetadataUnavailable IssueKind = iota
	IssueMalformedName
)

func (k IssueKind) String() string {
	switch k {
	case IssueMetadataUnavailable:
		return "metadata unavailable"
	case IssueMalformedName:
		return "malformed name"
	default:
		return "unknown issue"
	}
}

// Issue records an entry that was listed with a fallback kind or skipped.
type Issue struct {
	Name string
	Kind IssueKind
	Err  error
}

// Listing is a single directory snapshot in filesystem order.
type Listing struct {
	Path    string
	Entries []Entry
	Issues  []Issue
}

// ReadDir enumerates dirPath and classifies every entry. Enumeration errors
// are fatal and no partial listing is returned; per-entry problems are
// recovered and reported in Listing.Issues.
func ReadDir(dirPath string) (Listing, error) {
	f, err := os.Open(dirPath)
	if err != nil {
		return Listing{}, fmt.Errorf("%w %s: %w", ErrEnumerationFailed, dirPath, err)
	}
	defer func() {
		_ = f.Close()
	}()

	// Readdirnames keeps the order the filesystem returns; os.ReadDir would
	// sort by byte value.
	names, err := f.Readdirnames(-1)
	if err != nil {
		return Listing{}, fmt.Errorf("%w %s: %w", ErrEnumerationFailed, dirPath, err)
	}

	return classifyNames(dirPath, names, DirProber(dirPath)), nil
}

// ReadPath lists path when it is a directory (or a symlink to one). Any other
// existing object is returned as a one-entry listing showing path as given.
func ReadPath(path string) (Listing, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Listing{}, fmt.Errorf("%w %s: %w", ErrEnumerationFailed, path, err)
	}
	if info.IsDir() {
		return ReadDir(path)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		if target, statErr := os.Stat(path); statErr == nil && target.IsDir() {
			return ReadDir(path)
		}
	}

	// Operands named explicitly are always shown, so Hidden stays false.
	return Listing{
		Path: path,
		Entries: []Entry{{
			Name: norm.NFC.String(path),
			Kind: KindFromMode(info.Mode()),
		}},
	}, nil
}

func classifyNames(dirPath string, names []string, probe Prober) Listing {
	listing := Listing{
		Path:    dirPath,
		Entries: make([]Entry, 0, len(names)),
	}

	for _, rawName := range names {
		if rawName == "" || !utf8.ValidString(rawName) {
			listing.Issues = append(listing.Issues, Issue{
				Name: rawName,
				Kind: IssueMalformedName,
			})
			continue
		}

		if isSystemJunction(filepath.Join(dirPath, rawName)) {
			continue
		}

		entry, err := Classify(rawName, probe)
		if err != nil {
			listing.Issues = append(listing.Issues, Issue{
				Name: rawName,
				Kind: IssueMetadataUnavailable,
				Err:  err,
			})
		}
		entry.Name = norm.NFC.String(entry.Name)
		listing.Entries = append(listing.Entries, entry)
	}

	return listing
}
