// Package rpcservice implements the embedded RPC dispatch:
// in-process calls of the form "interface.Method" against a registry of
// handlers, using the same JSON-frame-shaped contract as external
// varlink (fully-qualified method name, optional parameters record, a
// "more" flag) but with delivery as a direct call rather than a socket.
package rpcservice

import (
	"context"

	"vsh/internal/record"
	"vsh/internal/vsherr"
)

// Handler implements one method's behaviour. params carries only
// declared keys (dispatch rejects anything else before the handler
// runs), though a declared key may be absent and params may be nil. It
// returns the stream of reply records.
type Handler func(ctx context.Context, params *record.Record) (record.Stream, error)

// Method is one registered entry: its declared parameter names (for the
// InvalidParameter structural check), whether it only makes sense as a
// streaming call, its doc string, and its handler.
type Method struct {
	Name          string
	Doc           string
	Params        []string // declared parameter keys; nil/empty means none expected
	StreamingOnly bool
	Handler       Handler
}

// Service is an immutable-after-build registry of methods on a single
// interface, built once at process start and never mutated afterward
// ("no global state required" beyond this process-wide table).
type Service struct {
	InterfaceName string
	order         []string
	methods       map[string]*Method
}

// New returns an empty Service for the given fully-qualified interface name.
func New(interfaceName string) *Service {
	return &Service{InterfaceName: interfaceName, methods: make(map[string]*Method)}
}

// Register adds a method. Panics on duplicate registration: this only
// happens at process start against a programmer-controlled table, so a
// collision is a build-time bug, not a runtime condition to recover from.
func (s *Service) Register(m Method) {
	if _, exists := s.methods[m.Name]; exists {
		panic("rpcservice: duplicate method " + m.Name)
	}
	s.order = append(s.order, m.Name)
	s.methods[m.Name] = &m
}

// Methods returns the registered methods in registration order.
func (s *Service) Methods() []*Method {
	out := make([]*Method, len(s.order))
	for i, name := range s.order {
		out[i] = s.methods[name]
	}
	return out
}

// Lookup returns the named method, if registered.
func (s *Service) Lookup(name string) (*Method, bool) {
	m, ok := s.methods[name]
	return m, ok
}

// Call dispatches a method call against params, enforcing the contracts
// MethodNotFound, InvalidParameter for an undeclared key,
// and ExpectedMore for a streaming-only method invoked without more.
func (s *Service) Call(ctx context.Context, method string, params *record.Record, more bool) (record.Stream, error) {
	m, ok := s.methods[method]
	if !ok {
		return nil, vsherr.MethodNotFound(method)
	}
	if params != nil {
		declared := make(map[string]bool, len(m.Params))
		for _, p := range m.Params {
			declared[p] = true
		}
		for _, k := range params.Keys() {
			if !declared[k] {
				return nil, vsherr.InvalidParameter(k)
			}
		}
	}
	if m.StreamingOnly && !more {
		return nil, vsherr.ExpectedMore()
	}
	return m.Handler(ctx, params)
}
