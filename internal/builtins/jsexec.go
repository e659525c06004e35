package builtins

import (
	"bytes"
	"context"
	"os/exec"

	"vsh/internal/record"
	"vsh/internal/vsherr"
)

const jsexecDoc = `jsexec cmd args...
Runs the given subprocess, captures stdout, parses it as a single JSON
document, then converts it: a JSON object with exactly one key whose
value is a list emits each list element; a JSON list emits each element
(non-object primitives wrapped as {value: ...}); any other JSON object
emits as one record.`

func jsexec(ctx context.Context, params *record.Record) (record.Stream, error) {
	argv := argsOf(params)
	if len(argv) == 0 {
		return nil, invalidParam("jsexec requires a command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if ee, ok := err.(*exec.ExitError); ok {
			exitCode = ee.ExitCode()
		}
		return nil, vsherr.ExecFailed(argv[0], exitCode, stderr.String())
	}

	v, err := record.Decode(stdout.Bytes())
	if err != nil {
		return nil, vsherr.InvalidJson(err.Error())
	}
	return jsonToStream(v), nil
}

func jsonToStream(v record.Value) record.Stream {
	switch v.Kind() {
	case record.KindList:
		out := make(record.Stream, 0, len(v.List()))
		for _, e := range v.List() {
			out = append(out, wrapValue(e))
		}
		return out
	case record.KindRecord:
		rec := v.Record()
		if rec.Len() == 1 {
			key := rec.Keys()[0]
			val, _ := rec.Get(key)
			if val.Kind() == record.KindList {
				out := make(record.Stream, 0, len(val.List()))
				for _, e := range val.List() {
					out = append(out, wrapValue(e))
				}
				return out
			}
		}
		return streamOf(rec)
	default:
		return streamOf(wrapValue(v))
	}
}

// wrapValue turns a non-object JSON element into a {value: ...} record,
// or returns the element's own record unchanged if it already is one.
func wrapValue(v record.Value) *record.Record {
	if v.Kind() == record.KindRecord {
		return v.Record()
	}
	r := record.New()
	r.Set("value", v)
	return r
}
