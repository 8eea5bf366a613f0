package fs

import (
	"errors"
	"os"
	"testing"
	"time"
)

type fakeInfo struct {
	name string
	mode os.FileMode
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() os.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeInfo) Sys() any           { return nil }

type fakeProber map[string]os.FileMode

func (p fakeProber) Lstat(name string) (os.FileInfo, error) {
	mode, ok := p[name]
	if !ok {
		return nil, os.ErrPermission
	}
	return fakeInfo{name: name, mode: mode}, nil
}

func TestKindFromMode(t *testing.T) {
	tests := []struct {
		name string
		mode os.FileMode
		want Kind
	}{
		{"regular", 0o644, KindFile},
		{"directory", os.ModeDir | 0o755, KindDirectory},
		{"symlink", os.ModeSymlink | 0o777, KindSymlink},
		{"char device", os.ModeDevice | os.ModeCharDevice, KindCharDevice},
		{"block device", os.ModeDevice, KindBlockDevice},
		{"fifo", os.ModeNamedPipe, KindFifo},
		{"socket", os.ModeSocket, KindSocket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindFromMode(tt.mode); got != tt.want {
				t.Fatalf("KindFromMode(%v) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestClassifySetsHiddenFromLeadingDot(t *testing.T) {
	probe := fakeProber{".bashrc": 0o644, "notes.": 0o644, "src": os.ModeDir}

	tests := []struct {
		name       string
		wantHidden bool
		wantKind   Kind
	}{
		{".bashrc", true, KindFile},
		{"notes.", false, KindFile},
		{"src", false, KindDirectory},
	}

	for _, tt := range tests {
		entry, err := Classify(tt.name, probe)
		if err != nil {
			t.Fatalf("Classify(%q) returned error: %v", tt.name, err)
		}
		if entry.Name != tt.name {
			t.Fatalf("expected display name %q to be kept, got %q", tt.name, entry.Name)
		}
		if entry.Hidden != tt.wantHidden {
			t.Fatalf("Classify(%q).Hidden = %v, want %v", tt.name, entry.Hidden, tt.wantHidden)
		}
		if entry.Kind != tt.wantKind {
			t.Fatalf("Classify(%q).Kind = %v, want %v", tt.name, entry.Kind, tt.wantKind)
		}
	}
}

func TestClassifyFallsBackToFileWhenMetadataUnavailable(t *testing.T) {
	entry, err := Classify(".secret", fakeProber{})
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("expected permission error to be reported, got %v", err)
	}
	if entry.Kind != KindFile {
		t.Fatalf("expected fallback kind %v, got %v", KindFile, entry.Kind)
	}
	if !entry.Hidden || entry.Name != ".secret" {
		t.Fatalf("expected hidden entry named .secret, got %+v", entry)
	}
}

func TestClassifyEmptyNameDoesNotPanic(t *testing.T) {
	entry, err := Classify("", fakeProber{})
	if err != nil {
		t.Fatalf("expected no error for empty name, got %v", err)
	}
	if entry.Hidden || entry.Kind != KindFile {
		t.Fatalf("unexpected entry for empty name: %+v", entry)
	}
}

func TestClassifyNamesRecordsIssues(t *testing.T) {
	probe := fakeProber{"a.txt": 0o644}
	listing := classifyNames("dir", []string{"a.txt", "gone", "bad\xffname", ""}, probe)

	if len(listing.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(listing.Entries), listing.Entries)
	}
	if listing.Entries[1].Name != "gone" || listing.Entries[1].Kind != KindFile {
		t.Fatalf("expected unreadable entry to be kept as file, got %+v", listing.Entries[1])
	}
	if len(listing.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %+v", len(listing.Issues), listing.Issues)
	}
	if listing.Issues[0].Kind != IssueMetadataUnavailable || listing.Issues[0].Name != "gone" {
		t.Fatalf("unexpected first issue: %+v", listing.Issues[0])
	}
	for _, issue := range listing.Issues[1:] {
		if issue.Kind != IssueMalformedName {
			t.Fatalf("expected malformed name issue, got %+v", issue)
		}
	}
}

func TestClassifyNamesNormalizesToNFC(t *testing.T) {
	decomposed := "cafe\u0301"
	probe := fakeProber{decomposed: 0o644}
	listing := classifyNames("dir", []string{decomposed}, probe)

	if len(listing.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(listing.Entries))
	}
	if got := listing.Entries[0].Name; got != "caf\u00e9" {
		t.Fatalf("expected NFC name %q, got %q", "caf\u00e9", got)
	}
}
