// Package walker implements the streaming recursive directory walker
// described in spec.md §4.6: a depth-first traversal that emits chunked
// batches of FileInfo on a channel, honoring depth limits, filter
// decisions and a caller-supplied baseline of already-known records.
package walker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vauradkar/pfs/filter"
	"github.com/vauradkar/pfs/fslayer"
	"github.com/vauradkar/pfs/pfserrors"
	"github.com/vauradkar/pfs/pfsstat"
	"github.com/vauradkar/pfs/ppath"
)

// DefaultChunkSize is the default emission batch size (spec.md §4.6).
const DefaultChunkSize = 20

// DefaultChannelCapacity is the default bounded channel capacity used by
// the spawn+drain driver (spec.md §4.6 "Driver").
const DefaultChannelCapacity = 100

// Walker performs one recursive traversal, sharing layer with any other
// concurrently running walkers. Two concurrently-running walkers over
// the same layer have no ordering relationship with each other; each
// produces an independent, self-consistent stream.
type Walker struct {
	stripPrefix string
	layer       *fslayer.Layer
	chunkSize   int
	maxDepth    *int
	baseline    map[string]pfsstat.FileStat
	tx          chan<- []pfsstat.FileInfo
}

// New constructs a Walker. stripPrefix is the host path used to compute
// the portable-relative form of each entry. baseline maps host-style
// relative paths (each entry's path relative to stripPrefix, as
// filepath.Rel returns it) to the FileStat the caller already has for that path; a nil baseline is
// equivalent to an empty one (a non-delta walk). chunkSize defaults to
// DefaultChunkSize if zero or negative.
func New(stripPrefix string, layer *fslayer.Layer, chunkSize int, maxDepth *int, baseline map[string]pfsstat.FileStat, tx chan<- []pfsstat.FileInfo) *Walker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if baseline == nil {
		baseline = map[string]pfsstat.FileStat{}
	}
	return &Walker{
		stripPrefix: stripPrefix,
		layer:       layer,
		chunkSize:   chunkSize,
		maxDepth:    maxDepth,
		baseline:    baseline,
		tx:          tx,
	}
}

// Run walks fullPath to completion, sending chunked batches of FileInfo
// on the Walker's output channel as they fill, plus a trailing partial
// chunk at end-of-walk if non-empty. It does not close the channel;
// callers that spawned their own channel own its lifecycle.
func (w *Walker) Run(ctx context.Context, fullPath string) error {
	chunk := make([]pfsstat.FileInfo, 0, w.chunkSize)
	chunk, err := w.walkRecursive(ctx, fullPath, 0, chunk)
	if err != nil {
		return err
	}
	if len(chunk) > 0 {
		return w.flush(ctx, chunk)
	}
	return nil
}

// flush sends chunk on the output channel, respecting context
// cancellation as the Go realization of "dropping the receiver side of
// the channel" from spec.md §5: a cancelled context surfaces as a Sync
// error and the walk unwinds.
func (w *Walker) flush(ctx context.Context, chunk []pfsstat.FileInfo) error {
	select {
	case w.tx <- chunk:
		return nil
	case <-ctx.Done():
		return pfserrors.Syncf("walker output channel", ctx.Err())
	}
}

// isAncestor reports whether path is prefix itself or a descendant of it,
// comparing whole path components rather than raw byte prefixes so that
// e.g. "/a/b" is not mistaken for an ancestor of "/a/bc".
func isAncestor(prefix, path string) bool {
	prefix = filepath.Clean(prefix)
	path = filepath.Clean(path)
	if prefix == path {
		return true
	}
	return strings.HasPrefix(path, prefix+string(filepath.Separator))
}

func (w *Walker) walkRecursive(ctx context.Context, dir string, depth int, chunk []pfsstat.FileInfo) ([]pfsstat.FileInfo, error) {
	if w.maxDepth != nil && depth > *w.maxDepth {
		return chunk, nil
	}

	// os.ReadDir (the package-level helper) sorts its result by name;
	// spec.md §5 requires OS-returned order with no lexical sort during
	// the walk, so the directory is opened and its entries read directly.
	directory, err := os.Open(dir)
	if err != nil {
		return chunk, pfserrors.Readf(dir, err)
	}
	entries, err := directory.ReadDir(-1)
	directory.Close()
	if err != nil {
		return chunk, pfserrors.Readf(dir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return chunk, pfserrors.Syncf("walk cancelled", err)
		}

		entryPath := filepath.Join(dir, entry.Name())

		// spec.md's strip-prefix step fails with a Read error if the
		// prefix isn't actually an ancestor of the entry; filepath.Rel
		// alone would silently return a "../"-prefixed path instead.
		if !isAncestor(w.stripPrefix, entryPath) {
			return chunk, pfserrors.Readf(entryPath, fmt.Errorf("%s is not a prefix of %s", w.stripPrefix, entryPath))
		}
		relative, err := filepath.Rel(w.stripPrefix, entryPath)
		if err != nil {
			return chunk, pfserrors.Readf("strip_prefix", err)
		}

		portable, err := ppath.FromHostPath(relative)
		if err != nil {
			return chunk, err
		}

		stats, err := w.layer.LookupOrLoad(entryPath, portable)
		if err != nil {
			return chunk, err
		}

		decision := w.layer.Filter.Matches(relative, stats.IsDirectory)

		switch decision {
		case filter.Deny:
			continue
		case filter.Allow:
			if baseStat, ok := w.baseline[relative]; !ok || !baseStat.Equal(stats) {
				chunk = append(chunk, pfsstat.FileInfo{Path: portable, Stats: stats})
				if len(chunk) == w.chunkSize {
					if err := w.flush(ctx, chunk); err != nil {
						return chunk, err
					}
					chunk = make([]pfsstat.FileInfo, 0, w.chunkSize)
				}
			}
		case filter.Traverse:
			// Directory itself is not emitted; descend below.
		}

		if stats.IsDirectory {
			chunk, err = w.walkRecursive(ctx, entryPath, depth+1, chunk)
			if err != nil {
				return chunk, err
			}
		}
	}

	return chunk, nil
}

// CollectRecursive runs a fresh walker against fullPath in a background
// goroutine and drains its chunked output into a single aggregated
// slice, joining the goroutine via errgroup.Group the way spec.md's
// "Driver" paragraph describes; a goroutine failure surfaces as a Read
// error naming the join failure.
func CollectRecursive(ctx context.Context, fullPath, stripPrefix string, layer *fslayer.Layer, chunkSize int, maxDepth *int, baseline map[string]pfsstat.FileStat) ([]pfsstat.FileInfo, error) {
	tx := make(chan []pfsstat.FileInfo, DefaultChannelCapacity)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer close(tx)
		w := New(stripPrefix, layer, chunkSize, maxDepth, baseline, tx)
		return w.Run(groupCtx, fullPath)
	})

	var items []pfsstat.FileInfo
	for batch := range tx {
		items = append(items, batch...)
	}

	if err := group.Wait(); err != nil {
		return nil, pfserrors.Readf("walk_dir goroutine", err)
	}

	return items, nil
}
