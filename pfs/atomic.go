package pfs

import (
	"os"
	"path/filepath"

	"github.com/vauradkar/pfs/pfserrors"
)

// writeFileAtomic writes data to a temporary file in path's directory,
// then renames it into place, so a concurrent reader never observes a
// partially written file at path.
func writeFileAtomic(path string, data []byte, permissions os.FileMode) error {
	dirname, basename := filepath.Split(path)
	temporary, err := os.CreateTemp(dirname, basename)
	if err != nil {
		return pfserrors.Writef(path, err)
	}

	if _, err := temporary.Write(data); err != nil {
		temporary.Close()
		os.Remove(temporary.Name())
		return pfserrors.Writef(path, err)
	}

	if err := temporary.Close(); err != nil {
		os.Remove(temporary.Name())
		return pfserrors.Writef(path, err)
	}

	if err := os.Chmod(temporary.Name(), permissions); err != nil {
		os.Remove(temporary.Name())
		return pfserrors.Writef(path, err)
	}

	if err := os.Rename(temporary.Name(), path); err != nil {
		os.Remove(temporary.Name())
		return pfserrors.Writef(path, err)
	}

	return nil
}
