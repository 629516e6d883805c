// Package files selects rename candidates in a directory and represents each
// one as an immutable [Handle]. All filesystem access goes through an
// afero.Fs so the same code runs against the OS or an in-memory tree.
package files

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrNotRegular is returned by [NewHandle] for directories, devices and
// other non-regular entries.
var ErrNotRegular = errors.New("not a regular file")

// Handle identifies one file under management. A Handle is a value: Rename
// returns a new Handle and leaves the receiver describing the old name.
type Handle struct {
	path string
	dir  string
	name string
}

// NewHandle validates that path names an existing regular file (symlinks
// are followed) and returns its handle with an absolute path.
func NewHandle(fs afero.Fs, path string) (Handle, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Handle{}, err
	}
	fi, err := fs.Stat(abs)
	if err != nil {
		return Handle{}, err
	}
	if !fi.Mode().IsRegular() {
		return Handle{}, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}
	return newHandle(filepath.Dir(abs), filepath.Base(abs)), nil
}

func newHandle(dir, name string) Handle {
	return Handle{path: filepath.Join(dir, name), dir: dir, name: name}
}

// Path returns the absolute path.
func (h Handle) Path() string { return h.path }

// Dir returns the owning directory.
func (h Handle) Dir() string { return h.dir }

// Name returns the current filename.
func (h Handle) Name() string { return h.name }

// Sibling returns the path newName would have in the same directory.
func (h Handle) Sibling(newName string) string {
	return filepath.Join(h.dir, newName)
}

// Rename renames the file to newName in the same directory and returns the
// handle for the new name. The caller is responsible for rejecting targets
// that already exist; fs.Rename replaces them on most platforms.
func (h Handle) Rename(fs afero.Fs, newName string) (Handle, error) {
	if err := fs.Rename(h.path, h.Sibling(newName)); err != nil {
		return h, err
	}
	return newHandle(h.dir, newName), nil
}
