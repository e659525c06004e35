// Package pipeline implements the pipeline tokeniser and executor:
// splitting a line into `|`-connected stages, splitting each
// stage into a command token and an unquoted argv, resolving the
// command against the built-in registry, and
// running stages left-to-right threading a record.Stream between them.
package pipeline

import (
	"fmt"
	"strings"

	"vsh/internal/vsherr"
)

// Stage is a command token plus its already-unquoted argv, per the
// Pipeline AST.
type Stage struct {
	Command string
	Argv    []string
}

// Split tokenises a full pipeline line into its stages, splitting on
// unquoted "|" and then on unquoted whitespace within each stage, with
// double/single-quote grouping and backslash escapes. This is
// implemented locally (not via a third-party shlex) so it shares
// exactly the quoting dialect foreach's substitution uses (see
// builtins.shellQuote): a word is unquoted if it contains none of the
// tokeniser's metacharacters, otherwise wrapped in double quotes with
// backslash/quote escaping, and this lexer must parse that back
// losslessly for nested foreach pipelines to round-trip.
func Split(line string) ([]Stage, error) {
	segments, err := splitTopLevel(line, '|')
	if err != nil {
		return nil, err
	}
	stages := make([]Stage, 0, len(segments))
	for _, seg := range segments {
		words, err := tokenizeWords(seg)
		if err != nil {
			return nil, err
		}
		if len(words) == 0 {
			return nil, vsherr.InvalidParameter("empty pipeline stage")
		}
		stages = append(stages, Stage{Command: words[0], Argv: words[1:]})
	}
	return stages, nil
}

// splitTopLevel splits s on sep, ignoring occurrences of sep inside
// single or double quotes or escaped with a backslash.
func splitTopLevel(s string, sep byte) ([]string, error) {
	var parts []string
	var cur strings.Builder
	var quote byte
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
		case c == '\\' && quote != '\'':
			cur.WriteByte(c)
			escaped = true
		case quote != 0:
			cur.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			cur.WriteByte(c)
			quote = c
		case c == sep:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, vsherr.InvalidParameter(fmt.Sprintf("unterminated quote in %q", s))
	}
	if escaped {
		return nil, vsherr.InvalidParameter(fmt.Sprintf("trailing backslash in %q", s))
	}
	parts = append(parts, cur.String())
	return parts, nil
}

// tokenizeWords splits one stage's text into argv words on unquoted
// whitespace, unescaping backslash sequences and stripping the
// quote characters themselves from the token's value.
func tokenizeWords(s string) ([]string, error) {
	var words []string
	var cur strings.Builder
	haveToken := false
	var quote byte
	escaped := false

	flush := func() {
		if haveToken {
			words = append(words, cur.String())
			cur.Reset()
			haveToken = false
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			haveToken = true
			escaped = false
		case c == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteByte(c)
			}
		case c == '"' || c == '\'':
			quote = c
			haveToken = true
		case c == ' ' || c == '\t':
			flush()
		default:
			cur.WriteByte(c)
			haveToken = true
		}
	}
	if quote != 0 {
		return nil, vsherr.InvalidParameter(fmt.Sprintf("unterminated quote in %q", s))
	}
	if escaped {
		return nil, vsherr.InvalidParameter(fmt.Sprintf("trailing backslash in %q", s))
	}
	flush()
	return words, nil
}
