package builtins

import "strings"

// CommandToMethod maps a stage's command token to the method name it
// resolves to on the built-in interface: capitalise the first letter and
// leave the rest untouched — "ls" -> "Ls", "filter_map" ->
// "Filter_map".
func CommandToMethod(cmd string) string {
	if cmd == "" {
		return cmd
	}
	return strings.ToUpper(cmd[:1]) + cmd[1:]
}

// MethodToCommand is the inverse of CommandToMethod, used by "help" to
// print the user-facing command spelling.
func MethodToCommand(method string) string {
	if method == "" {
		return method
	}
	return strings.ToLower(method[:1]) + method[1:]
}

func toCommandName(method string) string { return MethodToCommand(method) }
func toMethodName(cmd string) string     { return CommandToMethod(cmd) }
