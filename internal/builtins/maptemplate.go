// maptemplate.go holds map and filter_map: both parse each argument as
// either a bare dotted path (output key = the textual argument, type
// preserved) or "key=template" (rendered per the template engine), and
// differ only in what happens when a reference is missing.
package builtins

import (
	"context"
	"strings"

	"vsh/internal/record"
	"vsh/internal/template"
)

const mapDoc = `map templates...
Each argument is a bare identifier/dotted path (output key equals the
textual argument, value preserves its original type) or key=template
(output key "key", value rendered by the template engine). Missing
references omit that output key. Argument order determines output key
order.`

const filterMapDoc = `filter_map templates...
Identical to map except that any missing reference in any argument
causes the record to be dropped entirely.`

type mapArg struct {
	outKey string
	tmpl   *template.Template
}

func parseMapArgs(argv []string) []mapArg {
	out := make([]mapArg, 0, len(argv))
	for _, a := range argv {
		if key, rest, ok := strings.Cut(a, "="); ok {
			out = append(out, mapArg{outKey: key, tmpl: template.Parse(rest)})
		} else {
			out = append(out, mapArg{outKey: a, tmpl: template.Parse("{" + a + "}")})
		}
	}
	return out
}

func mapCmd(_ context.Context, params *record.Record) (record.Stream, error) {
	args := parseMapArgs(argsOf(params))
	in := inputOf(params)
	out := make(record.Stream, 0, len(in))
	for _, rec := range in {
		result := record.New()
		for _, a := range args {
			v, ok := template.Eval(a.tmpl, rec)
			if !ok {
				continue
			}
			result.Set(a.outKey, v)
		}
		out = append(out, result)
	}
	return out, nil
}

func filterMap(_ context.Context, params *record.Record) (record.Stream, error) {
	args := parseMapArgs(argsOf(params))
	in := inputOf(params)
	out := make(record.Stream, 0, len(in))
	for _, rec := range in {
		result := record.New()
		dropped := false
		for _, a := range args {
			v, ok := template.Eval(a.tmpl, rec)
			if !ok {
				dropped = true
				break
			}
			result.Set(a.outKey, v)
		}
		if !dropped {
			out = append(out, result)
		}
	}
	return out, nil
}
