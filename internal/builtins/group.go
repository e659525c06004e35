package builtins

import (
	"context"

	"vsh/internal/record"
)

const groupDoc = `group field
Emits one record per distinct value of field, with two keys: "field"
(the grouping value, named after the argument) and count: Int. Group
order is first-appearance order.`

func group(_ context.Context, params *record.Record) (record.Stream, error) {
	argv := argsOf(params)
	if len(argv) != 1 {
		return nil, invalidParam("group requires exactly one field")
	}
	field := argv[0]
	path := splitPath(field)

	in := inputOf(params)
	var order []string
	values := make(map[string]record.Value)
	present := make(map[string]bool)
	counts := make(map[string]int64)

	for _, rec := range in {
		v, ok := renderDotted(rec, path)
		var key string
		if ok {
			key = "\x01" + v.Render()
		} else {
			key = "\x00"
		}
		if _, seen := counts[key]; !seen {
			values[key] = v
			present[key] = ok
			order = append(order, key)
		}
		counts[key]++
	}

	out := make(record.Stream, 0, len(order))
	for _, key := range order {
		r := record.New()
		if present[key] {
			r.Set(field, values[key])
		}
		r.Set("count", record.Int(counts[key]))
		out = append(out, r)
	}
	return out, nil
}
