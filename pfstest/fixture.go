// Package pfstest builds the canonical fixture tree used across the
// portable filesystem test suites, grounded on
// _examples/original_source/src/test_utils.rs's TestRoot.
package pfstest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vauradkar/pfs/digest"
	"github.com/vauradkar/pfs/pfsstat"
	"github.com/vauradkar/pfs/pfsutil"
	"github.com/vauradkar/pfs/ppath"
)

// fixtureFile describes one entry of the canonical tree: its
// root-relative path, its contents (empty for directories) and whether
// it is a directory.
type fixtureFile struct {
	relative string
	contents string
	isDir    bool
}

// fixtureFiles mirrors TEMP_FILES: two top-level files, a nested
// directory with a file and a deeper empty directory, and a sibling
// directory with one file.
var fixtureFiles = []fixtureFile{
	{"file1.txt", "", false},
	{"file2.txt", "", false},
	{"dir1", "", true},
	{"dir1/file3.txt", "", false},
	{"dir1/dir2", "", true},
	{"dir1/dir2/file4.txt", "", false},
	{"dir1/dir2/dir_empty1", "", true},
	{"dir3", "", true},
	{"dir3/file6.txt", "", false},
}

// Root is a temporary directory populated with the canonical fixture
// tree, plus a record of every path's expected stats for comparison
// against walker/facade output.
type Root struct {
	t    *testing.T
	Path string

	// Files maps a root-relative, slash-joined path to its expected
	// FileStat, for both files and directories.
	Files map[string]pfsstat.FileStat
}

// New creates a fresh fixture tree under t.TempDir() and stats every
// entry it created.
func New(t *testing.T) *Root {
	t.Helper()

	root := &Root{t: t, Path: t.TempDir(), Files: map[string]pfsstat.FileStat{}}

	for _, f := range fixtureFiles {
		full := filepath.Join(root.Path, filepath.FromSlash(f.relative))
		if f.isDir {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("creating fixture directory %s: %v", f.relative, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("creating parent of fixture file %s: %v", f.relative, err)
		}
		if err := os.WriteFile(full, []byte(f.contents), 0o644); err != nil {
			t.Fatalf("creating fixture file %s: %v", f.relative, err)
		}
	}

	root.reload()
	return root
}

// CreateFile writes a new file (or overwrites an existing one) at
// relative, creating parent directories as needed, and refreshes the
// recorded stats for the whole tree.
func (r *Root) CreateFile(relative, contents string) {
	r.t.Helper()
	full := filepath.Join(r.Path, filepath.FromSlash(relative))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		r.t.Fatalf("creating parent of %s: %v", relative, err)
	}
	if err := os.WriteFile(full, []byte(contents), 0o644); err != nil {
		r.t.Fatalf("creating file %s: %v", relative, err)
	}
	r.reload()
}

// reload walks the fixture tree and rebuilds Files from scratch, the
// same "independent second pass" cross-check original_source performs:
// it never reuses the portable filesystem's own code, so a bug shared
// between the walker and this helper can't hide.
func (r *Root) reload() {
	r.t.Helper()
	files := map[string]pfsstat.FileStat{}

	err := filepath.Walk(r.Path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == r.Path {
			return nil
		}
		relative, err := filepath.Rel(r.Path, path)
		if err != nil {
			return err
		}

		var hexDigest *string
		if !info.IsDir() {
			hex, err := digest.HexFile(path)
			if err != nil {
				return err
			}
			hexDigest = &hex
		}

		files[filepath.ToSlash(relative)] = pfsstat.FromOSFileInfo(info, hexDigest)
		return nil
	})
	if err != nil {
		r.t.Fatalf("walking fixture tree: %v", err)
	}

	r.Files = files
}

// Portable builds a ppath.Path from a root-relative, slash-joined path
// such as those used as keys in Files.
func Portable(t *testing.T, relative string) ppath.Path {
	t.Helper()
	p, err := ppath.FromHostPath(filepath.FromSlash(relative))
	if err != nil {
		t.Fatalf("building portable path from %q: %v", relative, err)
	}
	return p
}

// MatchStat fails the test if actual does not equal the recorded stat
// for relative.
func (r *Root) MatchStat(relative string, actual pfsstat.FileStat) {
	r.t.Helper()
	expected, ok := r.Files[relative]
	if !ok {
		r.t.Fatalf("no fixture record for %s", relative)
	}
	if !expected.Equal(actual) {
		r.t.Fatalf("stat mismatch for %s: expected %+v, got %+v", relative, expected, actual)
	}
}

// AreSynced fails the test if items does not exactly match the fixture
// tree's recorded files: every fixture path must appear with identical
// stats, and no extra paths may appear.
func (r *Root) AreSynced(items []pfsstat.FileInfo) {
	r.t.Helper()

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		relative := filepath.ToSlash(item.Path.String())
		seen[relative] = true

		expected, ok := r.Files[relative]
		if !ok {
			r.t.Fatalf("unexpected synced path: %s", relative)
		}
		if !expected.Equal(item.Stats) {
			r.t.Fatalf("stat mismatch for %s: expected %+v, got %+v", relative, expected, item.Stats)
		}
	}

	for relative := range r.Files {
		if !seen[relative] {
			r.t.Fatalf("missing from synced items: %s", relative)
		}
	}
}

// MTime parses a fixture file's recorded modification time, for tests
// that need to construct FileStat values to feed into Write.
func MTime(t *testing.T, stat pfsstat.FileStat) string {
	t.Helper()
	if _, err := pfsutil.ParseTime(stat.MTime); err != nil {
		t.Fatalf("parsing mtime %q: %v", stat.MTime, err)
	}
	return stat.MTime
}
