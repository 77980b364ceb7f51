package lib

import (
	"os"
	"path/filepath"
	"strings"
)

// IsAbs covers problem of  filepath.IsAbs which only checks
// first element of path and allows .. inside.
// The filepath.Abs meanwhile does filepath.Clean.
// So this function returns true, if filepath.Abs returns very same value
func IsAbs(path string) bool {
	if abs, err := filepath.Abs(path); err != nil || abs != path {
		return false
	}

	return true
}

// RootOf returns the longest of roots which contains path,
// or empty string if path is outside of all roots.
// Example:
// roots are '/mnt/a' and '/mnt/a/b'
// if path is '/mnt/a/b/c.bin' then return is '/mnt/a/b'
// if path is '/mnt/ab/c.bin' then return is ”
func RootOf(roots []string, path string) string {
	ret := ""
	for _, root := range roots {
		prefix := root
		if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
			prefix += string(os.PathSeparator)
		}
		if path != root && !strings.HasPrefix(path, prefix) {
			continue
		}
		if len(root) > len(ret) {
			ret = root
		}
	}
	return ret
}
