package builtins

import (
	"context"
	"strings"

	"vsh/internal/record"
)

// echoDoc is the full doc string for "echo", whose first line is what
// "help" shows with no command argument.
const echoDoc = `echo args...
With no upstream input, emits one record built from args: "k=v" becomes
a String field k=v, a bare word becomes a Bool-true field.
With upstream input, passes records through unchanged and ignores args.`

func echo(_ context.Context, params *record.Record) (record.Stream, error) {
	in := inputOf(params)
	if in != nil {
		return passThrough(params), nil
	}
	argv := argsOf(params)
	rec := record.New()
	for _, a := range argv {
		if k, v, ok := strings.Cut(a, "="); ok {
			rec.Set(k, record.String(v))
		} else {
			rec.Set(a, record.Bool(true))
		}
	}
	return streamOf(rec), nil
}
