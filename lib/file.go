package lib

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// CreateFile creates file name and writes there content.
// The file must not exists.
func CreateFile(fs afero.Fs, name, content string) error {
	f, err := fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(content)
	return err
}

// AppendFile appends content to existing file name.
func AppendFile(fs afero.Fs, name, content string) error {
	f, err := fs.OpenFile(name, os.O_APPEND|os.O_WRONLY, 0o660)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(content)
	return err
}

// CreateSizedFile creates file name filled with size zero bytes.
// The file must not exists.
func CreateSizedFile(fs afero.Fs, name string, size uint64) error {
	f, err := fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.CopyN(f, zeroReader{}, int64(size))
	return err
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
