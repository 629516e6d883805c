package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// disabled is the specification that turns filtering off explicitly.
const disabled = "-"

// ParseError reports a malformed filter specification.
type ParseError struct {
	Spec   string
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("filter %q: %s: %v", e.Spec, e.Detail, e.Err)
	}
	return fmt.Sprintf("filter %q: %s", e.Spec, e.Detail)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrZeroIndex is wrapped when a substring filter uses index 0.
var ErrZeroIndex = errors.New("index 0 is not a part (use 1 for the first, -1 for the last)")

// ParseSubstrings parses comma-separated "<substring> <index>" pairs, e.g.
// "j 3" or "this 1, the -1". An empty spec or "-" returns None; a single
// pair returns IndexedSubstring; several return IndexedSubstringSet.
func ParseSubstrings(spec string) (Filter, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" || trimmed == disabled {
		return None{}, nil
	}

	var set IndexedSubstringSet
	for _, item := range strings.Split(trimmed, ",") {
		fields := strings.Fields(item)
		if len(fields) != 2 {
			return nil, &ParseError{
				Spec:   spec,
				Detail: fmt.Sprintf("%q: want \"<substring> <index>\"", strings.TrimSpace(item)),
			}
		}
		index, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &ParseError{Spec: spec, Detail: fmt.Sprintf("index %q", fields[1]), Err: err}
		}
		if index == 0 {
			return nil, &ParseError{Spec: spec, Detail: "index 0", Err: ErrZeroIndex}
		}
		set = append(set, IndexedSubstring{Substring: fields[0], Index: index})
	}

	if len(set) == 1 {
		return set[0], nil
	}
	return set, nil
}

// ParsePattern compiles expr into a WholeFilenamePattern. The expression
// must match at the start of the filename; it may end anywhere unless it
// carries its own $. An empty expr or "-" returns None.
func ParsePattern(expr string) (Filter, error) {
	if strings.TrimSpace(expr) == "" || strings.TrimSpace(expr) == disabled {
		return None{}, nil
	}
	re, err := regexp.Compile(`^(?:` + expr + `)`)
	if err != nil {
		return nil, &ParseError{Spec: expr, Detail: "regular expression", Err: err}
	}
	return WholeFilenamePattern{Expr: expr, Regexp: re}, nil
}
