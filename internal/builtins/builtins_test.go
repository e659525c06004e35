package builtins

import (
	"context"

	"vsh/internal/record"
)

// testParams builds a handler params record the way the pipeline
// executor does: "args" from argv, "input" from in (when non-nil).
func testParams(argv []string, in record.Stream) *record.Record {
	p := record.New()
	if argv != nil {
		vals := make([]record.Value, len(argv))
		for i, a := range argv {
			vals[i] = record.String(a)
		}
		p.Set(paramArgs, record.List(vals))
	}
	if in != nil {
		vals := make([]record.Value, len(in))
		for i, r := range in {
			vals[i] = record.Nested(r)
		}
		p.Set(paramInput, record.List(vals))
	}
	return p
}

func mustRun(handler func(context.Context, *record.Record) (record.Stream, error), argv []string, in record.Stream) record.Stream {
	out, err := handler(context.Background(), testParams(argv, in))
	if err != nil {
		panic(err)
	}
	return out
}

func rec(pairs ...any) *record.Record {
	r := record.New()
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].(string)
		r.Set(key, pairs[i+1].(record.Value))
	}
	return r
}
