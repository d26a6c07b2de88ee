package main

import (
	"github.com/vauradkar/pfs/pfs"
	"github.com/vauradkar/pfs/ppath"
)

// openFacade builds a PortableFs rooted at the configured base
// directory, honoring --no-cache.
func openFacade() (*pfs.PortableFs, error) {
	if rootConfiguration.noCache {
		return pfs.NewWithoutCache(rootConfiguration.baseDir), nil
	}
	return pfs.NewWithCache(rootConfiguration.baseDir)
}

// parsePath builds a portable path from a slash-separated argument,
// treating "" and "." as the root.
func parsePath(argument string) (ppath.Path, error) {
	if argument == "" || argument == "." {
		return ppath.Empty(), nil
	}
	return ppath.FromHostPath(argument)
}
