package random

import (
	"path/filepath"
	"strings"
)

// Filepath returns random path up to max directory
func Filepath(n int) string {
	a := []string{}
	n = Value([]int{0, n})
	for x := 0; x < n; x++ {
		a = append(a, strings.ReplaceAll(Words([]int{1, 3}), " ", "_"))
	}
	return strings.Join(a, string(filepath.Separator))
}

// FileName returns random file name with random extension
func FileName(n int) string {
	filename := strings.ReplaceAll(Words([]int{1, n}), " ", "_") + "." + Element([]string{"bin", "txt", "log", "iso", "img", "tar.gz", "qcow2", "sqlite"})
	return filename
}
