package builtins

import (
	"vsh/internal/rpcservice"
)

// InterfaceName is the fully-qualified name of the single built-in
// interface every command dispatches against ("the built-in
// commands are specified by a single interface document").
const InterfaceName = "io.vsh.Shell"

// BuildService constructs the registry of every built-in command as a
// method on InterfaceName. run is injected so "foreach" can recurse into
// full pipeline execution without this package importing the pipeline
// package, which itself depends on builtins for its method table.
// resolveAddr expands varlink address aliases from config; pass
// func(s string) string { return s } when no aliases are configured.
func BuildService(run Runner, resolveAddr AddrResolver) *rpcservice.Service {
	svc := rpcservice.New(InterfaceName)

	svc.Register(rpcservice.Method{
		Name: "Echo", Doc: echoDoc,
		Params: []string{paramArgs, paramInput},
		Handler: echo,
	})
	svc.Register(rpcservice.Method{
		Name: "Ls", Doc: lsDoc,
		Params:  []string{paramArgs},
		Handler: ls,
	})
	svc.Register(rpcservice.Method{
		Name: "Count", Doc: countDoc,
		Params: []string{paramInput},
		Handler: count,
	})
	svc.Register(rpcservice.Method{
		Name: "Grep", Doc: grepDoc,
		Params: []string{paramArgs, paramInput},
		Handler: grep,
	})
	svc.Register(rpcservice.Method{
		Name: "Jsexec", Doc: jsexecDoc,
		Params:  []string{paramArgs},
		Handler: jsexec,
	})
	svc.Register(rpcservice.Method{
		Name: "Map", Doc: mapDoc,
		Params: []string{paramArgs, paramInput},
		Handler: mapCmd,
	})
	svc.Register(rpcservice.Method{
		Name: "Filter_map", Doc: filterMapDoc,
		Params: []string{paramArgs, paramInput},
		Handler: filterMap,
	})
	svc.Register(rpcservice.Method{
		Name: "Sort", Doc: sortDoc,
		Params: []string{paramArgs, paramInput},
		Handler: sortCmd,
	})
	svc.Register(rpcservice.Method{
		Name: "Head", Doc: headDoc,
		Params: []string{paramArgs, paramInput},
		Handler: head,
	})
	svc.Register(rpcservice.Method{
		Name: "Tail", Doc: tailDoc,
		Params: []string{paramArgs, paramInput},
		Handler: tail,
	})
	svc.Register(rpcservice.Method{
		Name: "Uniq", Doc: uniqDoc,
		Params: []string{paramArgs, paramInput},
		Handler: uniqCmd,
	})
	svc.Register(rpcservice.Method{
		Name: "Reverse", Doc: reverseDoc,
		Params: []string{paramInput},
		Handler: reverseCmd,
	})
	svc.Register(rpcservice.Method{
		Name: "Sum", Doc: sumDoc,
		Params: []string{paramArgs, paramInput},
		Handler: sum,
	})
	svc.Register(rpcservice.Method{
		Name: "Min", Doc: minDoc,
		Params: []string{paramArgs, paramInput},
		Handler: minCmd,
	})
	svc.Register(rpcservice.Method{
		Name: "Max", Doc: maxDoc,
		Params: []string{paramArgs, paramInput},
		Handler: maxCmd,
	})
	svc.Register(rpcservice.Method{
		Name: "Where", Doc: whereDoc,
		Params: []string{paramArgs, paramInput},
		Handler: where,
	})
	svc.Register(rpcservice.Method{
		Name: "Group", Doc: groupDoc,
		Params: []string{paramArgs, paramInput},
		Handler: group,
	})
	svc.Register(rpcservice.Method{
		Name: "Enumerate", Doc: enumerateDoc,
		Params: []string{paramInput},
		Handler: enumerate,
	})
	svc.Register(rpcservice.Method{
		Name: "Print", Doc: printDoc,
		Params: []string{paramInput},
		Handler: print,
	})
	svc.Register(rpcservice.Method{
		Name: "Ps", Doc: psDoc,
		Handler: ps,
	})
	svc.Register(rpcservice.Method{
		Name: "Varlink", Doc: varlinkDoc,
		Params:  []string{paramArgs, paramInput},
		Handler: newVarlink(resolveAddr),
	})
	svc.Register(rpcservice.Method{
		Name: "Foreach", Doc: foreachDoc,
		Params: []string{paramArgs, paramInput},
		Handler: newForeach(run),
	})
	// Help is registered last so its closure sees every method above,
	// including Help itself.
	svc.Register(rpcservice.Method{
		Name: "Help", Doc: helpDoc,
		Params:  []string{paramArgs},
		Handler: newHelp(svc),
	})

	return svc
}
