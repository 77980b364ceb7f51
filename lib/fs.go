package lib

import (
	"errors"
	"os"

	"github.com/spf13/afero"
)

// NoSuchFile return true if file name does not exists
func NoSuchFile(fs afero.Fs, name string) bool {
	if _, err := fs.Stat(name); errors.Is(err, os.ErrNotExist) {
		return true
	}
	return false
}

// FileSize returns size of file or zero.
// Negative sizes reported by exotic filesystems are clamped to zero.
func FileSize(fs afero.Fs, name string) uint64 {
	fi, err := fs.Stat(name)
	if err != nil || fi.Size() < 0 {
		return 0
	}
	return uint64(fi.Size())
}

// DirExists returns true if name is an existing directory
func DirExists(fs afero.Fs, name string) bool {
	exist, _ := afero.DirExists(fs, name)
	return exist
}
