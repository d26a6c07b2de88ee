// Package fslayer bundles the cache and filter set shared by reference
// across a portable filesystem facade and every walker it launches, and
// implements lookup_or_load from spec.md §4.5.
package fslayer

import (
	"os"

	"github.com/vauradkar/pfs/cache"
	"github.com/vauradkar/pfs/digest"
	"github.com/vauradkar/pfs/filter"
	"github.com/vauradkar/pfs/pfserrors"
	"github.com/vauradkar/pfs/pfsstat"
	"github.com/vauradkar/pfs/ppath"
)

// Layer is the {cache, filter set} bundle shared across walkers. It
// outlives every walker launched against it.
type Layer struct {
	Cache  cache.Cache
	Filter *filter.Guarded
}

// New builds a Layer from the given cache and filter set.
func New(c cache.Cache, f *filter.Guarded) *Layer {
	if f == nil {
		f = filter.NewGuarded(nil)
	}
	return &Layer{Cache: c, Filter: f}
}

// LookupOrLoad returns the cached record for portablePath if present;
// otherwise it synthesizes a fresh record by statting and, for regular
// files, digesting hostPath, then inserts it into the cache before
// returning it. The cache lock is never held across the stat/digest
// I/O: two concurrent callers may both synthesize the same record, and
// the second insert simply overwrites the first with an identical
// value.
func (l *Layer) LookupOrLoad(hostPath string, portablePath ppath.Path) (pfsstat.FileStat, error) {
	if cached, ok := l.Cache.Get(portablePath); ok {
		return cached, nil
	}

	info, err := os.Stat(hostPath)
	if err != nil {
		return pfsstat.FileStat{}, pfserrors.Readf(hostPath, err)
	}

	var hexDigest *string
	if !info.IsDir() {
		hex, err := digest.HexFile(hostPath)
		if err != nil {
			return pfsstat.FileStat{}, err
		}
		hexDigest = &hex
	}

	stat := pfsstat.FromOSFileInfo(info, hexDigest)
	l.Cache.Put(portablePath, stat)
	return stat, nil
}
