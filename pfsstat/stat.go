// Package pfsstat defines the metadata records exchanged between the
// portable filesystem and its callers: FileStat, FileInfo,
// DirectoryEntry, Directory and RecursiveDirList.
package pfsstat

import (
	"os"
	"sort"
	"time"

	"github.com/vauradkar/pfs/pfserrors"
	"github.com/vauradkar/pfs/pfsutil"
	"github.com/vauradkar/pfs/ppath"
)

// FileStat is the metadata record synchronized to a remote peer. Its
// string-typed MTime and hex-typed SHA256 are part of the wire contract
// and must round-trip verbatim.
type FileStat struct {
	Size        uint64  `json:"size"`
	MTime       string  `json:"mtime"`
	IsDirectory bool    `json:"is_directory"`
	SHA256      *string `json:"sha256"`
}

// dirSentinel is the digest value recorded for directories: Some(""),
// never None and never a real digest.
func dirSentinel() *string {
	empty := ""
	return &empty
}

// FromOSFileInfo builds a FileStat from a stdlib os.FileInfo and an
// optional precomputed digest. When digest is nil and info is not a
// directory, SHA256 is left nil (constructed without content access).
func FromOSFileInfo(info os.FileInfo, digest *string) FileStat {
	if info.IsDir() {
		digest = dirSentinel()
	}
	return FileStat{
		Size:        uint64(info.Size()),
		MTime:       pfsutil.FormatTime(info.ModTime()),
		IsDirectory: info.IsDir(),
		SHA256:      digest,
	}
}

// Equal reports whether two FileStat values are field-wise identical,
// including the nil vs. Some("") distinction for SHA256.
func (s FileStat) Equal(other FileStat) bool {
	if s.Size != other.Size || s.MTime != other.MTime || s.IsDirectory != other.IsDirectory {
		return false
	}
	if (s.SHA256 == nil) != (other.SHA256 == nil) {
		return false
	}
	if s.SHA256 != nil && *s.SHA256 != *other.SHA256 {
		return false
	}
	return true
}

// ModTime parses MTime back into a time.Time, for callers that need to
// compare or apply it to the filesystem.
func (s FileStat) ModTime() (time.Time, error) {
	return pfsutil.ParseTime(s.MTime)
}

// FileInfo pairs a portable path with its metadata record; it is the
// unit emitted by the directory walker.
type FileInfo struct {
	Path  ppath.Path `json:"path"`
	Stats FileStat   `json:"stats"`
}

// DirectoryEntry is a directory listing row: a basename plus metadata.
type DirectoryEntry struct {
	Name  string   `json:"name"`
	Stats FileStat `json:"stats"`
}

// EntryFromFileInfo converts a FileInfo to a DirectoryEntry, failing
// with InvalidPath if the path has no basename (i.e. is the root).
func EntryFromFileInfo(info FileInfo) (DirectoryEntry, error) {
	name, ok := info.Path.Basename()
	if !ok {
		return DirectoryEntry{}, pfserrors.InvalidPathf(info.Path.String())
	}
	return DirectoryEntry{Name: name, Stats: info.Stats}, nil
}

// Directory is a directory listing: the path that was listed and its
// ordered items (directories first, then files, each group ascending by
// name).
type Directory struct {
	CurrentPath ppath.Path       `json:"current_path"`
	Items       []DirectoryEntry `json:"items"`
}

// SortEntries orders entries directory-first, then lexicographically by
// name within each group, matching the facade's ReadDir contract.
func SortEntries(entries []DirectoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Stats.IsDirectory != entries[j].Stats.IsDirectory {
			return entries[i].Stats.IsDirectory
		}
		return entries[i].Name < entries[j].Name
	})
}

// RecursiveDirList is the input to a delta walk: a base path plus the
// FileInfo records the caller already has for that subtree.
type RecursiveDirList struct {
	BaseDir ppath.Path `json:"base_dir"`
	Deltas  []FileInfo `json:"deltas"`
}
