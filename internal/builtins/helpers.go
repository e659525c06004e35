// Package builtins implements every built-in command as a method on
// the single built-in interface, registered against an rpcservice.Service.
package builtins

import (
	"strconv"
	"strings"

	"vsh/internal/record"
	"vsh/internal/vsherr"
)

// paramArgs and paramInput are the two conventional parameter keys the
// pipeline executor uses when invoking a built-in: "args" carries the
// stage's argv (excluding the command token itself) as a list of
// strings, and "input" carries the previous stage's stream as a list of
// nested records.
const (
	paramArgs  = "args"
	paramInput = "input"
)

func argsOf(params *record.Record) []string {
	if params == nil {
		return nil
	}
	v, ok := params.Get(paramArgs)
	if !ok {
		return nil
	}
	list := v.List()
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Render()
	}
	return out
}

func inputOf(params *record.Record) record.Stream {
	if params == nil {
		return nil
	}
	v, ok := params.Get(paramInput)
	if !ok {
		return nil
	}
	list := v.List()
	out := make(record.Stream, 0, len(list))
	for _, e := range list {
		if e.Kind() == record.KindRecord {
			out = append(out, e.Record())
		}
	}
	return out
}

// passThrough returns the input stream unchanged, the identity behaviour
// referenced by the pipeline-associativity property.
func passThrough(params *record.Record) record.Stream {
	return inputOf(params)
}

// renderDotted renders the value at a dotted path for display purposes
// (grep, where, sort, sum, min, max, group all resolve dotted paths).
func renderDotted(r *record.Record, path []string) (record.Value, bool) {
	return record.Resolve(r, path)
}

func splitPath(s string) []string {
	return strings.Split(s, ".")
}

// parseNumber reports whether s parses as a number and its value.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func streamOf(records ...*record.Record) record.Stream {
	return record.Stream(records)
}

// invalidParam raises InvalidParameter with a free-form malformed-token
// message, used for structural argv errors.
func invalidParam(message string) *vsherr.Error {
	return vsherr.InvalidParameter(message)
}
