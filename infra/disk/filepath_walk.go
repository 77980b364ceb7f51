package disk

import (
	"io/fs"
	"strings"

	"github.com/cloudcopper/bytesize"
	"github.com/cloudcopper/bytesize/ports"
	"github.com/spf13/afero"
)

// Usage is the measured content of a directory tree
type Usage struct {
	Files int64
	Dirs  int64
	Size  bytesize.Binary
}

type FilepathWalk struct {
	fs ports.FS
}

func NewFilepathWalk(f ports.FS) FilepathWalk {
	return FilepathWalk{f}
}

// Walk calls fn for every entry under root, except .git directories.
// The walk stops when fn returns false.
func (f *FilepathWalk) Walk(root string, fn func(name string, info fs.FileInfo, err error) (bool, error)) error {
	err := afero.Walk(f.fs, root, func(path string, info fs.FileInfo, err error) error {
		if info != nil && info.IsDir() && strings.HasSuffix(path, ".git") {
			return fs.SkipDir
		}
		ok, err := fn(path, info, err)
		if !ok && err == nil {
			return fs.SkipAll
		}
		return err
	})
	// afero walk predates fs.SkipAll
	if err == fs.SkipAll {
		return nil
	}
	return err
}

// Measure sums sizes of regular files under root.
// The root itself is not counted as directory.
// Saturates at bytesize.MaxCount instead of wrapping.
func (f *FilepathWalk) Measure(root string) (Usage, error) {
	usage := Usage{}
	err := f.Walk(root, func(name string, info fs.FileInfo, err error) (bool, error) {
		if err != nil {
			return false, err
		}
		switch {
		case info.IsDir():
			if name != root {
				usage.Dirs++
			}
		case info.Mode().IsRegular():
			usage.Files++
			usage.Size = add(usage.Size, info.Size())
		}
		return true, nil
	})
	return usage, err
}

func add(sum bytesize.Binary, size int64) bytesize.Binary {
	if size <= 0 {
		return sum
	}
	if uint64(size) > bytesize.MaxCount-sum.Bytes() {
		return bytesize.Binary(bytesize.MaxCount)
	}
	return sum + bytesize.Binary(size)
}
