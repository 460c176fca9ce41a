package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrInvalidFileName is returned when a suggested name has no usable base name
var ErrInvalidFileName = errors.New("invalid file name")

// DiskSaver writes downloaded content into a directory. It is the headless
// counterpart of a browser save dialog.
type DiskSaver struct {
	Dir string

	mu       sync.Mutex
	lastPath string
}

// NewDiskSaver creates a saver for dir
func NewDiskSaver(dir string) *DiskSaver {
	return &DiskSaver{Dir: dir}
}

// TriggerFileSave writes data to Dir under the base name of suggestedName.
// Only the base name is used so a typed path segment cannot escape Dir.
func (s *DiskSaver) TriggerFileSave(ctx context.Context, data []byte, suggestedName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := SafeFileName(suggestedName)
	if err != nil {
		return err
	}

	if err := CreateDirectoryIfNotExists(s.Dir); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.Dir, err)
	}

	path := filepath.Join(s.Dir, name)
	if err := WriteFileAtomic(path, data); err != nil {
		return err
	}

	s.mu.Lock()
	s.lastPath = path
	s.mu.Unlock()
	return nil
}

// LastPath returns the path of the most recently saved file
func (s *DiskSaver) LastPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPath
}

// SafeFileName reduces a remote name to a local base name
func SafeFileName(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(filepath.FromSlash(name))
	if base == "." || base == ".." || base == string(filepath.Separator) || strings.TrimSpace(base) == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	return base, nil
}

// WriteFileAtomic writes data next to path and renames it into place, so a
// failed write never leaves a truncated file behind
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".part-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, DefaultFilePermissions); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}
