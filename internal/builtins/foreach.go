package builtins

import (
	"context"
	"strings"

	"vsh/internal/record"
	"vsh/internal/rpcservice"
	"vsh/internal/template"
)

const foreachDoc = `foreach cmdline
For each input record, substitutes {path} tokens in cmdline (shell-quoted,
missing -> empty), parses the result as a pipeline, executes it, and
emits all records that pipeline produces in order. Inner pipelines may
themselves contain |.`

// Runner executes a fully-formed pipeline line and returns everything it
// emits. The pipeline package supplies this so that "foreach" can recurse
// without builtins importing pipeline (which itself depends on builtins
// for its method registry).
type Runner func(ctx context.Context, line string) (record.Stream, error)

func newForeach(run Runner) rpcservice.Handler {
	return func(ctx context.Context, params *record.Record) (record.Stream, error) {
		argv := argsOf(params)
		if len(argv) == 0 {
			return nil, invalidParam("foreach requires a command line")
		}
		cmdline := strings.Join(argv, " ")
		tmpl := template.Parse(cmdline)

		in := inputOf(params)
		var out record.Stream
		for _, rec := range in {
			line := template.EvalForeachQuoted(tmpl, rec, shellQuote)
			results, err := run(ctx, line)
			if err != nil {
				return nil, err
			}
			out = append(out, results...)
		}
		return out, nil
	}
}

// shellQuote quotes s so it survives re-tokenisation by vsh's own pipeline
// lexer: values containing no metacharacters pass through
// unquoted, everything else is wrapped in double quotes with embedded
// backslashes and double quotes escaped.
func shellQuote(s string) string {
	if s == "" {
		return `""`
	}
	needsQuote := strings.ContainsAny(s, " \t\"'|\\")
	if !needsQuote {
		return s
	}
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range s {
		if c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(c)
	}
	sb.WriteByte('"')
	return sb.String()
}
