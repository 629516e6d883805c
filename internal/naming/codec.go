package naming

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrEmptySeparator is returned by [Decode] for an empty separator.
var ErrEmptySeparator = errors.New("separator must not be empty")

// Parts is the ordered list of substrings obtained by splitting a filename
// stem on a separator. Index order is meaningful for filters and templates.
type Parts []string

// Stem returns basename without its final extension.
func Stem(basename string) string {
	return strings.TrimSuffix(basename, filepath.Ext(basename))
}

// Decode splits the stem of filename on sep. A stem that does not contain
// sep yields a single part. Joining the result with sep gives back the stem.
func Decode(filename, sep string) (Parts, error) {
	if sep == "" {
		return nil, ErrEmptySeparator
	}
	return Parts(strings.Split(Stem(filepath.Base(filename)), sep)), nil
}

// Join reassembles parts with sep. Join(Decode(n, sep), sep) == Stem(n).
func (p Parts) Join(sep string) string {
	return strings.Join(p, sep)
}

// Clone returns a copy that shares no memory with p.
func (p Parts) Clone() Parts {
	if p == nil {
		return nil
	}
	out := make(Parts, len(p))
	copy(out, p)
	return out
}
