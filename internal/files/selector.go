package files

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"
)

// ErrBadPattern is wrapped by [CompilePattern] failures.
var ErrBadPattern = errors.New("invalid search pattern")

// NotADirectoryError is returned by [Candidates] when the directory is
// missing or is not a directory.
type NotADirectoryError struct {
	Path string
	Err  error // Stat error, nil when the path exists but is not a directory.
}

func (e *NotADirectoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("not a directory: %s: %v", e.Path, e.Err)
	}
	return "not a directory: " + e.Path
}

func (e *NotADirectoryError) Unwrap() error { return e.Err }

// CompilePattern compiles a shell-style glob matched against bare filenames:
// * ? [abc] [!abc] and {a,b} alternation. Patterns containing a path
// separator are rejected because selection is never recursive.
func CompilePattern(pattern string) (glob.Glob, error) {
	if strings.ContainsRune(pattern, '/') || strings.ContainsRune(pattern, filepath.Separator) {
		return nil, fmt.Errorf("%w %q: patterns match names in one directory, not paths", ErrBadPattern, pattern)
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadPattern, pattern, err)
	}
	return g, nil
}

// Candidates validates dir and pattern, then returns a single-pass sequence
// over the regular files directly inside dir whose names match pattern. The
// directory listing is taken once, when iteration starts, so files renamed
// while the sequence is consumed are neither yielded again nor able to push
// unread entries out of view. Each entry is stat'ed only when it is reached.
// Entries come in listing order; callers that need a stable order must
// sort. An error yielded mid-sequence describes one entry and iteration
// continues.
func Candidates(fs afero.Fs, dir, pattern string) (iter.Seq2[Handle, error], error) {
	matcher, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	abs, err := ResolveDir(fs, dir)
	if err != nil {
		return nil, err
	}

	return func(yield func(Handle, error) bool) {
		names, err := listNames(fs, abs)
		if err != nil {
			yield(Handle{}, err)
			return
		}
		for _, name := range names {
			if !matcher.Match(name) {
				continue
			}
			h, err := NewHandle(fs, filepath.Join(abs, name))
			if errors.Is(err, ErrNotRegular) {
				continue
			}
			if !yield(h, err) {
				return
			}
		}
	}, nil
}

func listNames(fs afero.Fs, dir string) ([]string, error) {
	d, err := fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	names, err := d.Readdirnames(-1)
	if err != nil && !errors.Is(err, io.EOF) {
		return names, fmt.Errorf("read %s: %w", dir, err)
	}
	return names, nil
}

// ResolveDir returns the absolute form of dir after checking it is an
// existing directory.
func ResolveDir(fs afero.Fs, dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &NotADirectoryError{Path: dir, Err: err}
	}
	isDir, err := afero.IsDir(fs, abs)
	if err != nil {
		return "", &NotADirectoryError{Path: dir, Err: err}
	}
	if !isDir {
		return "", &NotADirectoryError{Path: dir}
	}
	return abs, nil
}
