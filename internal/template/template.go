// Package template implements the field-template engine:
// "{field}" / "{a.b.c}" references resolved against a record, with type
// preservation when a template is exactly one reference.
package template

import (
	"strings"

	"vsh/internal/record"
)

// segment is either a literal run of characters or a field reference.
type segment struct {
	literal string
	path    []string
	isRef   bool
}

// Template is a parsed "{path}" template: an ordered list of literal and
// field-reference segments.
type Template struct {
	segments  []segment
	singleRef bool // true iff the entire template is exactly one reference
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// Parse parses s into a Template. A malformed reference (unterminated
// brace, empty path, or a path segment that is not a valid identifier)
// keeps its "{" as a literal character and scanning resumes right after
// it, so later well-formed references are still recognised —
// vsh's built-ins never reject a template at parse time, only at
// resolution time (missing references), matching the silence on
// malformed-template handling.
func Parse(s string) *Template {
	var segs []segment
	var lit strings.Builder
	i := 0
	for i < len(s) {
		if s[i] != '{' {
			lit.WriteByte(s[i])
			i++
			continue
		}
		path, consumed := parseRef(s[i:])
		if path == nil {
			lit.WriteByte(s[i])
			i++
			continue
		}
		if lit.Len() > 0 {
			segs = append(segs, segment{literal: lit.String()})
			lit.Reset()
		}
		segs = append(segs, segment{path: path, isRef: true})
		i += consumed
	}
	if lit.Len() > 0 {
		segs = append(segs, segment{literal: lit.String()})
	}
	single := len(segs) == 1 && segs[0].isRef
	return &Template{segments: segs, singleRef: single}
}

// parseRef parses a leading "{path}" token from s. Returns the dotted
// path's key names and the number of bytes consumed, or (nil, 0) if s
// does not start with a well-formed reference.
func parseRef(s string) ([]string, int) {
	if len(s) < 3 || s[0] != '{' {
		return nil, 0
	}
	end := strings.IndexByte(s, '}')
	if end < 2 {
		return nil, 0
	}
	inner := s[1:end]
	parts := strings.Split(inner, ".")
	for _, p := range parts {
		if p == "" || !isIdentStart(p[0]) {
			return nil, 0
		}
		for j := 1; j < len(p); j++ {
			if !isIdentChar(p[j]) {
				return nil, 0
			}
		}
	}
	return parts, end + 1
}

// SingleRef reports whether the template is exactly one field reference
// with no surrounding literal text.
func (t *Template) SingleRef() bool { return t.singleRef }

// Path returns the single reference's path. Only meaningful when
// SingleRef reports true.
func (t *Template) Path() []string {
	if !t.singleRef {
		return nil
	}
	return t.segments[0].path
}

// Eval resolves t against r. When t is a single reference, the resolved
// Value (with its original type) is returned directly. Otherwise the
// result is always a String built by concatenating literals and the
// string-rendering of each reference. ok is false whenever any
// referenced path is missing.
func Eval(t *Template, r *record.Record) (v record.Value, ok bool) {
	if t.singleRef {
		return record.Resolve(r, t.segments[0].path)
	}
	var sb strings.Builder
	for _, seg := range t.segments {
		if !seg.isRef {
			sb.WriteString(seg.literal)
			continue
		}
		val, found := record.Resolve(r, seg.path)
		if !found {
			return record.Value{}, false
		}
		sb.WriteString(val.Render())
	}
	return record.String(sb.String()), true
}

// EvalForeach resolves t against r the way "foreach" does: missing
// references substitute the empty string rather than failing the whole
// substitution.
func EvalForeach(t *Template, r *record.Record) string {
	return EvalForeachQuoted(t, r, func(s string) string { return s })
}

// EvalForeachQuoted is EvalForeach, but every substituted (non-literal)
// value is passed through quote before being appended — the shell-quoting
// step required when foreach substitutes into a command line,
// so arbitrary field content cannot be mistaken for further tokens.
func EvalForeachQuoted(t *Template, r *record.Record, quote func(string) string) string {
	var sb strings.Builder
	for _, seg := range t.segments {
		if !seg.isRef {
			sb.WriteString(seg.literal)
			continue
		}
		val, found := record.Resolve(r, seg.path)
		if !found {
			continue
		}
		sb.WriteString(quote(val.Render()))
	}
	return sb.String()
}
