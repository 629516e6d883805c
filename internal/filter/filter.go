// Package filter decides whether a candidate file is left alone.
//
// Two policies exist and point in opposite directions on purpose:
//
//   - IndexedSubstring / IndexedSubstringSet skip a file when a designated
//     part contains a substring (case-insensitive): "skip if matches".
//   - WholeFilenamePattern skips a file when the filename does NOT match a
//     regular expression anchored at its first character: "rename only if
//     matches". Case handling is up to the expression, e.g. (?i).
package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/backmassage/partname/internal/naming"
)

// ErrIndexOutOfRange is the cause carried by *IndexError.
var ErrIndexOutOfRange = errors.New("part index out of range")

// IndexError reports a filter index the filename does not have.
type IndexError struct {
	Index int // User-facing index (1-based, negative from the end).
	Parts int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("filter index %d out of range for %d part(s)", e.Index, e.Parts)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Filter is the skip predicate applied to every decoded candidate.
type Filter interface {
	// ShouldSkip reports whether the candidate must keep its name.
	ShouldSkip(filename string, parts naming.Parts) (bool, error)
	// Describe returns a short human-readable form for log lines.
	Describe() string
}

// ResolveIndex maps a user-facing index onto parts: 1..n address parts from
// the front, -1..-n from the back. 0 never resolves.
func ResolveIndex(index, n int) (int, error) {
	var i int
	switch {
	case index > 0:
		i = index - 1
	case index < 0:
		i = n + index
	default:
		return 0, &IndexError{Index: index, Parts: n}
	}
	if i < 0 || i >= n {
		return 0, &IndexError{Index: index, Parts: n}
	}
	return i, nil
}

// --- None ---

// None never skips.
type None struct{}

func (None) ShouldSkip(string, naming.Parts) (bool, error) { return false, nil }
func (None) Describe() string                              { return "none" }

// --- IndexedSubstring ---

// IndexedSubstring skips a file when the part at Index contains Substring,
// ignoring case.
type IndexedSubstring struct {
	Substring string
	Index     int // 1-based; negative counts from the end.
}

func (f IndexedSubstring) ShouldSkip(_ string, parts naming.Parts) (bool, error) {
	i, err := ResolveIndex(f.Index, len(parts))
	if err != nil {
		return false, err
	}
	return containsFold(parts[i], f.Substring), nil
}

func (f IndexedSubstring) Describe() string {
	return fmt.Sprintf("skip when part %d contains %q", f.Index, f.Substring)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// --- IndexedSubstringSet ---

// IndexedSubstringSet skips a file when any member would skip it.
type IndexedSubstringSet []IndexedSubstring

// ShouldSkip evaluates members in order and stops at the first match or the
// first index error.
func (s IndexedSubstringSet) ShouldSkip(filename string, parts naming.Parts) (bool, error) {
	for _, f := range s {
		skip, err := f.ShouldSkip(filename, parts)
		if err != nil {
			return false, err
		}
		if skip {
			return true, nil
		}
	}
	return false, nil
}

func (s IndexedSubstringSet) Describe() string {
	descs := make([]string, len(s))
	for i, f := range s {
		descs[i] = f.Describe()
	}
	return strings.Join(descs, ", or ")
}

// --- WholeFilenamePattern ---

// WholeFilenamePattern renames only files whose full name (extension
// included) matches Regexp; all others are skipped. ParsePattern anchors
// Regexp at the start of the name, so "joke" matches "joke_a_b.pdf" but not
// "x_y_joke.pdf". Add $ to require the match to cover the whole name.
type WholeFilenamePattern struct {
	Expr   string // As the user wrote it, for Describe.
	Regexp *regexp.Regexp
}

func (f WholeFilenamePattern) ShouldSkip(filename string, _ naming.Parts) (bool, error) {
	return !f.Regexp.MatchString(filename), nil
}

func (f WholeFilenamePattern) Describe() string {
	expr := f.Expr
	if expr == "" {
		expr = f.Regexp.String()
	}
	return fmt.Sprintf("rename only names matching /%s/", expr)
}
