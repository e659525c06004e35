// Package vsherr implements the tagged-error taxonomy: every
// built-in and RPC failure is a named error carrying a parameter record,
// not a bare string, so the read loop can format it as
// "error: <Name>: <parameters as JSON>".
package vsherr

import (
	"fmt"

	"vsh/internal/record"
)

// Error is an error name plus its parameter record. Name is the bare
// error name (e.g. "InvalidParameter"), not prefixed with an interface
// name.
type Error struct {
	Name   string
	Params *record.Record
}

func (e *Error) Error() string {
	data, err := record.RecordToJSON(e.Params)
	if err != nil {
		return fmt.Sprintf("%s: <unencodable params>", e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Name, data)
}

func newErr(name string, pairs ...any) *Error {
	r := record.New()
	for i := 0; i+1 < len(pairs); i += 2 {
		key, _ := pairs[i].(string)
		switch v := pairs[i+1].(type) {
		case string:
			r.Set(key, record.String(v))
		case int:
			r.Set(key, record.Int(int64(v)))
		case int64:
			r.Set(key, record.Int(v))
		case record.Value:
			r.Set(key, v)
		default:
			r.Set(key, record.String(fmt.Sprintf("%v", v)))
		}
	}
	return &Error{Name: name, Params: r}
}

func InvalidParameter(parameter string) *Error {
	return newErr("InvalidParameter", "parameter", parameter)
}

func MethodNotFound(method string) *Error {
	return newErr("MethodNotFound", "method", method)
}

func ExecFailed(command string, exitcode int, message string) *Error {
	return newErr("ExecFailed", "command", command, "exitcode", exitcode, "message", message)
}

func InvalidJson(message string) *Error {
	return newErr("InvalidJson", "message", message)
}

func VarlinkConnectionFailed(message string) *Error {
	return newErr("VarlinkConnectionFailed", "message", message)
}

func VarlinkCallFailed(errName string, params *record.Record) *Error {
	e := newErr("VarlinkCallFailed", "error", errName)
	if params != nil {
		e.Params.Set("parameters", record.Nested(params))
	}
	return e
}

func VarlinkMethodNotFound(method string) *Error {
	return newErr("VarlinkMethodNotFound", "method", method)
}

func ExpectedMore() *Error {
	return newErr("ExpectedMore")
}
