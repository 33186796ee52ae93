package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const defaultFileMode fs.FileMode = 0644

// FS is the filesystem as seen by the publishing pipeline.
type FS interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Remove(path string) error
}

// OS implements FS on the local filesystem.
type OS struct{}

func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile overwrites path in place, keeping the permissions of an existing
// file.
func (OS) WriteFile(path string, data []byte) error {
	mode := defaultFileMode

	fi, err := os.Stat(path)
	switch {
	case err == nil:
		mode = fi.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat '%s': %w", path, err)
	}

	return os.WriteFile(path, data, mode)
}

func (OS) Remove(path string) error {
	return os.Remove(path)
}
