package builtins

import (
	"context"

	"vsh/internal/record"
)

const printDoc = `print
Passes the input through unchanged, but marks the stream to be rendered
as a table whenever its records share one non-empty key order, even
when vsh is running non-interactively or writing to a pipe.`

// forcedTableKey is an unexported record key used to flag a stream as
// "render as table regardless of interactivity"; internal/render looks
// for it on the first record and strips it before display.
const forcedTableKey = "__vsh_force_table"

func print(_ context.Context, params *record.Record) (record.Stream, error) {
	in := inputOf(params)
	if len(in) == 0 {
		return in, nil
	}
	out := make(record.Stream, len(in))
	copy(out, in)
	first := out[0].Clone()
	first.Set(forcedTableKey, record.Bool(true))
	out[0] = first
	return out, nil
}
