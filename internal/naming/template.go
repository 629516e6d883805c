package naming

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel causes carried by *TemplateError.
var (
	ErrMalformedTemplate = errors.New("malformed template")
	ErrIndexOutOfRange   = errors.New("placeholder index out of range")
)

// TemplateError reports a template that cannot be parsed, or one that
// references a part the filename does not have.
type TemplateError struct {
	Template string
	Index    int // Offending placeholder index; -1 for syntax errors.
	Parts    int // Number of parts available (out-of-range errors only).
	Detail   string
	Err      error
}

func (e *TemplateError) Error() string {
	if errors.Is(e.Err, ErrIndexOutOfRange) {
		return fmt.Sprintf("template %q: placeholder {%d} needs %d parts, name has %d",
			e.Template, e.Index, e.Index+1, e.Parts)
	}
	return fmt.Sprintf("template %q: %s", e.Template, e.Detail)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// segment is either literal text (index < 0) or a placeholder.
type segment struct {
	lit   string
	index int
}

// Template is a parsed rename template. "{i}" is replaced with the i-th
// part (zero-based); "{{" and "}}" produce literal braces.
type Template struct {
	raw      string
	segments []segment
	max      int
}

// ParseTemplate parses s. Empty placeholders, non-numeric or signed indices,
// an unclosed '{' and a lone '}' are rejected.
func ParseTemplate(s string) (Template, error) {
	t := Template{raw: s, max: -1}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{lit: lit.String(), index: -1})
			lit.Reset()
		}
	}
	syntaxErr := func(format string, args ...interface{}) (Template, error) {
		return Template{}, &TemplateError{
			Template: s,
			Index:    -1,
			Detail:   fmt.Sprintf(format, args...),
			Err:      ErrMalformedTemplate,
		}
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(s[i+1:], '}')
			if end < 0 {
				return syntaxErr("unclosed '{' at offset %d", i)
			}
			field := s[i+1 : i+1+end]
			n, ok := parseIndex(field)
			if !ok {
				return syntaxErr("placeholder {%s} at offset %d is not a zero-based part index", field, i)
			}
			flush()
			t.segments = append(t.segments, segment{index: n})
			if n > t.max {
				t.max = n
			}
			i += end + 1
		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return syntaxErr("single '}' at offset %d", i)
		default:
			lit.WriteByte(s[i])
		}
	}
	flush()
	return t, nil
}

func parseIndex(field string) (int, bool) {
	if field == "" {
		return 0, false
	}
	for _, c := range field {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, false
	}
	return n, true
}

// String returns the template source.
func (t Template) String() string { return t.raw }

// MaxIndex returns the highest placeholder index, or -1 without placeholders.
func (t Template) MaxIndex() int { return t.max }

// Encode substitutes parts into the template. It fails when the template
// references an index at or beyond len(parts).
func (t Template) Encode(parts Parts) (string, error) {
	if t.max >= len(parts) {
		return "", &TemplateError{
			Template: t.raw,
			Index:    t.max,
			Parts:    len(parts),
			Err:      ErrIndexOutOfRange,
		}
	}
	var b strings.Builder
	for _, seg := range t.segments {
		if seg.index < 0 {
			b.WriteString(seg.lit)
			continue
		}
		b.WriteString(parts[seg.index])
	}
	return b.String(), nil
}

// Encode parses tmpl and substitutes parts into it.
func Encode(parts Parts, tmpl string) (string, error) {
	t, err := ParseTemplate(tmpl)
	if err != nil {
		return "", err
	}
	return t.Encode(parts)
}
