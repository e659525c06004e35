package builtins

import (
	"context"
	"strings"

	"vsh/internal/record"
	"vsh/internal/rpcservice"
	"vsh/internal/vsherr"
)

const helpDoc = `help [command]
With no argument, emits one record per built-in {command, description}
where description is the first line of that method's doc string. With an
argument, emits one record {command, description} containing the full
doc string.`

// newHelp closes over the service so "help" can enumerate every other
// registered method, itself included.
func newHelp(svc *rpcservice.Service) rpcservice.Handler {
	return func(_ context.Context, params *record.Record) (record.Stream, error) {
		argv := argsOf(params)
		if len(argv) == 0 {
			out := make(record.Stream, 0, len(svc.Methods()))
			for _, m := range svc.Methods() {
				r := record.New()
				r.Set("command", record.String(toCommandName(m.Name)))
				r.Set("description", record.String(firstLine(m.Doc)))
				out = append(out, r)
			}
			return out, nil
		}
		name := toMethodName(argv[0])
		m, ok := svc.Lookup(name)
		if !ok {
			return nil, vsherr.MethodNotFound(argv[0])
		}
		r := record.New()
		r.Set("command", record.String(toCommandName(m.Name)))
		r.Set("description", record.String(m.Doc))
		return streamOf(r), nil
	}
}

func firstLine(doc string) string {
	if i := strings.IndexByte(doc, '\n'); i >= 0 {
		return doc[:i]
	}
	return doc
}
