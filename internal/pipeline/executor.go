package pipeline

import (
	"context"
	"strings"

	"vsh/internal/builtins"
	"vsh/internal/record"
	"vsh/internal/rpcservice"
	"vsh/internal/vsherr"
)

// Executor runs pipeline lines against the built-in service, left to
// right, threading each stage's output stream into the next stage's
// input. It also satisfies builtins.Runner so "foreach" can
// recurse back into full pipeline execution for its substituted
// command lines.
type Executor struct {
	svc *rpcservice.Service
}

// New builds an Executor and the built-in service it dispatches
// against. The service's "foreach" handler is wired to call back into
// this same Executor, closing the loop described in builtins/foreach.go
// without either package importing the other's concrete type.
// resolveAddr is threaded into the "varlink" handler for alias
// expansion (config's varlink_aliases); pass nil when there is none.
func New(resolveAddr builtins.AddrResolver) *Executor {
	if resolveAddr == nil {
		resolveAddr = func(addr string) string { return addr }
	}
	e := &Executor{}
	e.svc = builtins.BuildService(e.Run, resolveAddr)
	return e
}

// Service exposes the built-in registry, used by the shell's command
// completion and by the interface-description self-test at startup.
func (e *Executor) Service() *rpcservice.Service {
	return e.svc
}

// Run parses line into stages and executes them sequentially, returning
// the final stage's output stream.
func (e *Executor) Run(ctx context.Context, line string) (record.Stream, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	stages, err := Split(line)
	if err != nil {
		return nil, err
	}

	var stream record.Stream
	for i, stage := range stages {
		method := builtins.CommandToMethod(stage.Command)
		m, ok := e.svc.Lookup(method)
		if !ok {
			return nil, vsherr.MethodNotFound(stage.Command)
		}

		params := record.New()
		if declares(m, "args") {
			params.Set("args", record.List(stringsToValues(stage.Argv)))
		}
		if declares(m, "input") {
			if i == 0 {
				// First stage: omit "input" entirely so the handler can
				// distinguish "no upstream at all" from "upstream ran
				// and emitted zero records".
			} else {
				params.Set("input", record.List(recordsToValues(stream)))
			}
		}

		out, err := e.svc.Call(ctx, method, params, true)
		if err != nil {
			return nil, err
		}
		stream = out
	}
	return stream, nil
}

func declares(m *rpcservice.Method, key string) bool {
	for _, p := range m.Params {
		if p == key {
			return true
		}
	}
	return false
}

func stringsToValues(argv []string) []record.Value {
	out := make([]record.Value, len(argv))
	for i, a := range argv {
		out[i] = record.String(a)
	}
	return out
}

func recordsToValues(stream record.Stream) []record.Value {
	out := make([]record.Value, len(stream))
	for i, r := range stream {
		out[i] = record.Nested(r)
	}
	return out
}
