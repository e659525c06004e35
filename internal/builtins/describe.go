package builtins

import (
	"strings"

	"vsh/internal/idl"
	"vsh/internal/rpcservice"
)

// Describe renders svc as an interface description document in the IDL
// grammar, generated from each method's doc comment and
// declared parameter keys, so "help" and the wire-level interface
// description stay derived from one source (the registry table) instead
// of two independently maintained copies.
func Describe(svc *rpcservice.Service) string {
	var sb strings.Builder
	sb.WriteString("interface " + svc.InterfaceName + "\n\n")
	for _, m := range svc.Methods() {
		for _, line := range strings.Split(m.Doc, "\n") {
			sb.WriteString("# " + line + "\n")
		}
		sb.WriteString("method " + m.Name + "(" + inputFields(m) + ") -> (output: object[])\n\n")
	}
	return sb.String()
}

func inputFields(m *rpcservice.Method) string {
	var parts []string
	for _, p := range m.Params {
		switch p {
		case paramArgs:
			parts = append(parts, "args: string[]")
		case paramInput:
			parts = append(parts, "input: object[]")
		}
	}
	return strings.Join(parts, ", ")
}

// SelfTest parses svc's generated description back through the IDL
// parser and reports any mismatch, catching doc-comment or registry
// table mistakes that would otherwise only surface via "help" output.
func SelfTest(svc *rpcservice.Service) (*idl.Interface, error) {
	return idl.Parse(Describe(svc))
}
