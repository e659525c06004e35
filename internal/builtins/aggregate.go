// aggregate.go holds the single-record-result reduction commands:
// count, sum, min, and max.
package builtins

import (
	"context"

	"vsh/internal/record"
)

const countDoc = `count
Consumes all input, emits one record {count: Int}.`

func count(_ context.Context, params *record.Record) (record.Stream, error) {
	in := inputOf(params)
	r := record.New()
	r.Set("count", record.Int(int64(len(in))))
	return streamOf(r), nil
}

const sumDoc = `sum field
Emits {sum: Number}: numeric coercion of each record's field (missing or
non-numeric counted as 0); the result is Int if every contribution was
integral, else Float.`

func sum(_ context.Context, params *record.Record) (record.Stream, error) {
	argv := argsOf(params)
	if len(argv) != 1 {
		return nil, invalidParam("sum requires exactly one field argument")
	}
	path := splitPath(argv[0])
	in := inputOf(params)

	var total float64
	allIntegral := true
	for _, rec := range in {
		v, ok := renderDotted(rec, path)
		if !ok {
			continue
		}
		switch v.Kind() {
		case record.KindInt:
			total += float64(v.Int())
		case record.KindFloat:
			total += v.Float()
			allIntegral = false
		default:
			if f, ok := parseNumber(v.Render()); ok {
				total += f
				if v.Kind() != record.KindInt {
					allIntegral = false
				}
			}
		}
	}

	r := record.New()
	if allIntegral {
		r.Set("sum", record.Int(int64(total)))
	} else {
		r.Set("sum", record.Float(total))
	}
	return streamOf(r), nil
}

const minDoc = `min field
Emits the entire input record whose field is numerically smallest (ties
broken by input order). Empty input emits nothing.`

func minCmd(_ context.Context, params *record.Record) (record.Stream, error) {
	return extremum(params, true)
}

const maxDoc = `max field
Emits the entire input record whose field is numerically largest (ties
broken by input order). Empty input emits nothing.`

func maxCmd(_ context.Context, params *record.Record) (record.Stream, error) {
	return extremum(params, false)
}

func extremum(params *record.Record, wantMin bool) (record.Stream, error) {
	argv := argsOf(params)
	if len(argv) != 1 {
		return nil, invalidParam("min/max requires exactly one field argument")
	}
	path := splitPath(argv[0])
	in := inputOf(params)

	var best *record.Record
	var bestVal float64
	for _, rec := range in {
		v, ok := renderDotted(rec, path)
		if !ok {
			continue
		}
		f, ok := v.Number()
		if !ok {
			f, ok = parseNumber(v.Render())
			if !ok {
				continue
			}
		}
		if best == nil || (wantMin && f < bestVal) || (!wantMin && f > bestVal) {
			best = rec
			bestVal = f
		}
	}
	if best == nil {
		return nil, nil
	}
	return streamOf(best), nil
}
