// Package pfs implements the Portable Filesystem Facade described in
// spec.md §4.7: the public entry point that resolves portable paths
// against a configured base directory and exposes read_dir,
// read_dir_recurse, exchange_deltas, write, read_file and delete_file.
package pfs

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/vauradkar/pfs/cache"
	"github.com/vauradkar/pfs/filter"
	"github.com/vauradkar/pfs/fslayer"
	"github.com/vauradkar/pfs/pfserrors"
	"github.com/vauradkar/pfs/pfsstat"
	"github.com/vauradkar/pfs/ppath"
	"github.com/vauradkar/pfs/walker"
)

// defaultCacheCapacity is the default LRU cache size (spec.md §3).
const defaultCacheCapacity = 1000

// PortableFs is a filesystem rooted at baseDir. Cloning a PortableFs
// (copying the struct) shares the underlying layer, so filter mutations
// made through one handle are visible to walkers spawned by any other
// handle sharing the same layer.
type PortableFs struct {
	baseDir string
	layer   *fslayer.Layer
	logger  *log.Logger
}

// NewWithCache creates a PortableFs backed by the bounded LRU cache
// variant, with a default accept-all filter set installed.
func NewWithCache(baseDir string) (*PortableFs, error) {
	lru, err := cache.NewLRUCache(defaultCacheCapacity)
	if err != nil {
		return nil, err
	}
	return newFacade(baseDir, lru), nil
}

// NewWithoutCache creates a PortableFs backed by the null cache variant,
// with a default accept-all filter set installed.
func NewWithoutCache(baseDir string) *PortableFs {
	return newFacade(baseDir, cache.NewNullCache())
}

func newFacade(baseDir string, c cache.Cache) *PortableFs {
	return &PortableFs{
		baseDir: baseDir,
		layer:   fslayer.New(c, filter.NewGuarded(nil)),
		logger:  log.Default(),
	}
}

// SetLogger overrides the logger used to report swallowed ExchangeDeltas
// errors. Passing nil restores the standard logger.
func (p *PortableFs) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	p.logger = logger
}

// AllowPath adds an allowed root prefix. The deny list always overrides
// the allow list.
func (p *PortableFs) AllowPath(path string) {
	p.layer.Filter.Mutate(func(s *filter.Set) { s.AllowPath(path) })
}

// DenyPath adds a denied root prefix.
func (p *PortableFs) DenyPath(path string) {
	p.layer.Filter.Mutate(func(s *filter.Set) { s.DenyPath(path) })
}

// AllowExtension adds an allowed file extension.
func (p *PortableFs) AllowExtension(ext string) {
	p.layer.Filter.Mutate(func(s *filter.Set) { s.AllowExtension(ext) })
}

// AllowFilename adds an allowed exact filename.
func (p *PortableFs) AllowFilename(name string) {
	p.layer.Filter.Mutate(func(s *filter.Set) { s.AllowFilename(name) })
}

// AllowGlob adds an allowed doublestar glob pattern (see SPEC_FULL.md
// §2 for why this exists beyond spec.md's filter collections).
func (p *PortableFs) AllowGlob(pattern string) {
	p.layer.Filter.Mutate(func(s *filter.Set) { s.AllowGlob(pattern) })
}

// asAbsPath resolves a portable path to a host path under the base
// directory.
func (p *PortableFs) asAbsPath(relative ppath.Path) string {
	return relative.AppendTo(p.baseDir)
}

// ReadDir lists the immediate contents of path: directories before
// files, each group ascending by name.
func (p *PortableFs) ReadDir(ctx context.Context, path ppath.Path) (pfsstat.Directory, error) {
	full := p.asAbsPath(path)
	depth := 0
	items, err := walker.CollectRecursive(ctx, full, full, p.layer, walker.DefaultChunkSize, &depth, nil)
	if err != nil {
		return pfsstat.Directory{}, err
	}

	entries := make([]pfsstat.DirectoryEntry, 0, len(items))
	for _, item := range items {
		entry, err := pfsstat.EntryFromFileInfo(item)
		if err != nil {
			return pfsstat.Directory{}, err
		}
		entries = append(entries, entry)
	}
	pfsstat.SortEntries(entries)

	return pfsstat.Directory{CurrentPath: path, Items: entries}, nil
}

// ReadDirRecurse walks path to unbounded depth and returns the
// aggregated FileInfo list. Paths are relative to path's parent (or to
// path itself when it is the root), the same anchoring ExchangeDeltas
// uses, so the result can be fed back as its baseline. Unlike ReadDir,
// it does not sort results (spec.md §9 Open Question: the two
// operations are kept distinct).
func (p *PortableFs) ReadDirRecurse(ctx context.Context, path ppath.Path) ([]pfsstat.FileInfo, error) {
	full := p.asAbsPath(path)
	stripPrefix := full
	if parent, ok := path.Parent(); ok {
		stripPrefix = p.asAbsPath(parent)
	}
	return walker.CollectRecursive(ctx, full, stripPrefix, p.layer, walker.DefaultChunkSize, nil, nil)
}

// DeltaSession identifies one ExchangeDeltas call, so log messages about
// its swallowed errors can be correlated back to the call that produced
// them.
type DeltaSession struct {
	ID uuid.UUID
}

// ExchangeDeltas walks baseDir looking only for entries that differ
// from (or are missing from) deltas, streaming matches on tx as the
// walker finds them. It runs inline (the caller is expected to be
// draining tx concurrently) and closes tx when the walk finishes. Any
// walk error is logged and swallowed, matching spec.md's fire-and-forget
// contract: the caller never receives an error return from this method.
func (p *PortableFs) ExchangeDeltas(ctx context.Context, tx chan<- []pfsstat.FileInfo, req pfsstat.RecursiveDirList, chunkSize int) DeltaSession {
	session := DeltaSession{ID: uuid.New()}

	full := p.asAbsPath(req.BaseDir)
	stripPrefix := full
	if parent, ok := req.BaseDir.Parent(); ok {
		stripPrefix = p.asAbsPath(parent)
	}

	baseline := make(map[string]pfsstat.FileStat, len(req.Deltas))
	for _, info := range req.Deltas {
		baseline[info.Path.String()] = info.Stats
	}

	defer close(tx)
	w := walker.New(stripPrefix, p.layer, chunkSize, nil, baseline, tx)
	if err := w.Run(ctx, full); err != nil {
		p.logger.Printf("exchange_deltas %s: %v", session.ID, err)
	}

	return session
}

// Write creates or overwrites the file at path with data, ensuring every
// parent directory exists first. If the file exists and overwrite is
// false, it fails with FileExists. After a successful write, the file's
// modified time is set from stats.MTime; only once that succeeds is
// stats inserted into the cache under path, so overwrite never clears
// an existing cache entry before success and a failed mtime update
// leaves the old cache entry in place.
func (p *PortableFs) Write(path ppath.Path, data []byte, overwrite bool, stats pfsstat.FileStat) error {
	full := p.asAbsPath(path)

	if !overwrite {
		if _, err := os.Stat(full); err == nil {
			return pfserrors.FileExistsf(full)
		} else if !os.IsNotExist(err) {
			return pfserrors.Readf(full, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return pfserrors.Createf(filepath.Dir(full), err)
	}

	if err := writeFileAtomic(full, data, 0o644); err != nil {
		return err
	}

	modTime, err := stats.ModTime()
	if err != nil {
		return err
	}
	if err := os.Chtimes(full, modTime, modTime); err != nil {
		return pfserrors.Writef(full, err)
	}

	p.layer.Cache.Put(path, stats)
	return nil
}

// ReadFile returns the contents of the file at path. It fails with
// InvalidArgument if path does not exist or names a directory.
func (p *PortableFs) ReadFile(path ppath.Path) ([]byte, error) {
	full := p.asAbsPath(path)

	info, err := os.Stat(full)
	if err != nil {
		return nil, pfserrors.InvalidArgumentf("file does not exist: " + full)
	}
	if info.IsDir() {
		return nil, pfserrors.InvalidArgumentf("path is a directory: " + full)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, pfserrors.Readf(full, err)
	}
	return data, nil
}

// DeleteFile removes the file at path and pops its cache entry. It
// fails with InvalidArgument if path is missing or names a directory.
func (p *PortableFs) DeleteFile(path ppath.Path) error {
	full := p.asAbsPath(path)

	info, err := os.Stat(full)
	if err != nil {
		return pfserrors.InvalidArgumentf("file does not exist: " + full)
	}
	if info.IsDir() {
		return pfserrors.InvalidArgumentf("path is a directory: " + full)
	}

	if err := os.Remove(full); err != nil {
		return pfserrors.Deletef(full, err)
	}

	p.layer.Cache.Pop(path)
	return nil
}
