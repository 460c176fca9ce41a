package model

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNoContent is returned when a selected file has nothing to open
var ErrNoContent = errors.New("selected file has no content source")

// SelectedFile is an opaque handle to a user-chosen local file. The content
// is opened on demand so a selection never holds a descriptor.
type SelectedFile struct {
	Name string
	Size int64 // -1 if unknown
	open func() (io.ReadCloser, error)
}

// NewLocalFile creates a handle for a file on the local filesystem
func NewLocalFile(path string) (*SelectedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return &SelectedFile{
		Name: filepath.Base(path),
		Size: info.Size(),
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// NewReaderFile creates a handle backed by an arbitrary opener, e.g. a
// storage URI reader returned by a file picker
func NewReaderFile(name string, size int64, opener func() (io.ReadCloser, error)) *SelectedFile {
	return &SelectedFile{Name: name, Size: size, open: opener}
}

// Open returns a fresh reader over the file content
func (f *SelectedFile) Open() (io.ReadCloser, error) {
	if f == nil || f.open == nil {
		return nil, ErrNoContent
	}
	return f.open()
}
