// Package atomicfile implements the write-to-temp, rename-over pattern used
// by both the index cache and the usage store, grounded on the teacher's
// pkg/filesystem.WriteFileAtomic.
package atomicfile

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const temporaryNamePrefix = ".desktop-indexer-atomic-"

// Write writes data to path atomically: it creates a temporary file in the
// same directory, writes and closes it, then renames it over path. A
// concurrent writer to the same path may clobber this write or be
// clobbered by it, but the file at path is never observed torn.
func Write(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, temporaryNamePrefix)
	if err != nil {
		return errors.Wrap(err, "unable to create temporary file")
	}
	tempName := temp.Name()

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		os.Remove(tempName)
		return errors.Wrap(err, "unable to write temporary file")
	}
	if err := temp.Close(); err != nil {
		os.Remove(tempName)
		return errors.Wrap(err, "unable to close temporary file")
	}
	if err := os.Chmod(tempName, perm); err != nil {
		os.Remove(tempName)
		return errors.Wrap(err, "unable to set temporary file permissions")
	}
	if err := os.Rename(tempName, path); err != nil {
		os.Remove(tempName)
		return errors.Wrap(err, "unable to rename temporary file into place")
	}
	return nil
}
