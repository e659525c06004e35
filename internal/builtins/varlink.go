package builtins

import (
	"context"
	"strings"

	"vsh/internal/idl"
	"vsh/internal/record"
	"vsh/internal/rpcservice"
	"vsh/internal/varlinkclient"
	"vsh/internal/vsherr"
)

const varlinkDoc = `varlink addr [method] [k=v...]
Connects to a varlink-compatible peer at addr (unix:/path[;mode=NNNN],
unix:@abstract, tcp:host:port, tcp:[v6]:port; addr may also be a
configured alias). With no method, lists every interface's methods as
{interface, method, signature}. With a qualified (iface.Method) or
unqualified method, calls it, streaming every reply as a record;
parameters come from k=v args or, absent those, the single upstream
record.`

// AddrResolver expands a varlink address alias (config's
// varlink_aliases map) to its underlying address; it returns its
// argument unchanged for anything it doesn't recognise.
type AddrResolver func(addr string) string

func newVarlink(resolve AddrResolver) rpcservice.Handler {
	return func(_ context.Context, params *record.Record) (record.Stream, error) {
		argv := argsOf(params)
		if len(argv) == 0 {
			return nil, invalidParam("varlink requires an address")
		}
		addr := resolve(argv[0])
		rest := argv[1:]

		client, err := varlinkclient.Open(addr)
		if err != nil {
			return nil, vsherr.VarlinkConnectionFailed(err.Error())
		}
		defer client.Close()

		if len(rest) == 0 || !looksLikeMethod(rest[0]) {
			return varlinkDescribe(client)
		}
		method := rest[0]
		kvArgs := rest[1:]

		qualified := method
		if !strings.Contains(method, ".") {
			iface, err := client.ResolveMethod(method)
			if err != nil {
				return nil, vsherr.VarlinkMethodNotFound(method)
			}
			qualified = iface + "." + method
		}

		callParams, err := buildCallParams(kvArgs, inputOf(params))
		if err != nil {
			return nil, err
		}

		replies, err := client.Call(qualified, callParams)
		if err != nil {
			return nil, vsherr.VarlinkConnectionFailed(err.Error())
		}

		out := make(record.Stream, 0, len(replies))
		for _, r := range replies {
			if r.Error != "" {
				return nil, vsherr.VarlinkCallFailed(r.Error, r.Parameters)
			}
			out = append(out, r.Parameters)
		}
		return out, nil
	}
}

// looksLikeMethod distinguishes a method-name argument from a stray
// k=v parameter accidentally given first: any argument containing "="
// is never treated as a method name, so "varlink addr k=v" is handled
// as a call with no method (the methods are listed and the k=v
// arguments are ignored).
func looksLikeMethod(s string) bool {
	return !strings.Contains(s, "=")
}

func buildCallParams(kvArgs []string, upstream record.Stream) (*record.Record, error) {
	if len(kvArgs) > 0 {
		rec := record.New()
		for _, a := range kvArgs {
			key, val, ok := varlinkclient.ParseKV(a)
			if !ok {
				return nil, invalidParam(a)
			}
			rec.Set(key, val)
		}
		return rec, nil
	}
	if len(upstream) == 1 {
		return upstream[0], nil
	}
	return record.New(), nil
}

func varlinkDescribe(client *varlinkclient.Client) (record.Stream, error) {
	names, err := client.GetInfo()
	if err != nil {
		return nil, vsherr.VarlinkConnectionFailed(err.Error())
	}

	var out record.Stream
	for _, name := range names {
		desc, err := client.GetInterfaceDescription(name)
		if err != nil {
			return nil, vsherr.VarlinkConnectionFailed(err.Error())
		}
		for _, m := range desc.Methods() {
			r := record.New()
			r.Set("interface", record.String(name))
			r.Set("method", record.String(m.Name))
			r.Set("signature", record.String(methodSignature(m)))
			out = append(out, r)
		}
	}
	return out, nil
}

func methodSignature(m idl.Member) string {
	var sb strings.Builder
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	for i, f := range m.In {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
	}
	sb.WriteString(") -> (")
	for i, f := range m.Out {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
	}
	sb.WriteByte(')')
	return sb.String()
}
