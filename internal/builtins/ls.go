package builtins

import (
	"context"
	"os"
	"sort"

	"vsh/internal/record"
)

const lsDoc = `ls [path]
Lists the given directory (default: working directory); one record per
entry with fields name: String, type: "file"|"dir"|"link", size: Int.
Entries whose metadata cannot be read are silently skipped. Output is
sorted ascending by name.`

func ls(_ context.Context, params *record.Record) (record.Stream, error) {
	argv := argsOf(params)
	dir := "."
	if len(argv) > 0 {
		dir = argv[0]
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	type item struct {
		name string
		typ  string
		size int64
	}
	items := make([]item, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		typ := "file"
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			typ = "link"
		case info.IsDir():
			typ = "dir"
		}
		items = append(items, item{name: e.Name(), typ: typ, size: info.Size()})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].name < items[j].name })

	out := make(record.Stream, 0, len(items))
	for _, it := range items {
		r := record.New()
		r.Set("name", record.String(it.name))
		r.Set("type", record.String(it.typ))
		r.Set("size", record.Int(it.size))
		out = append(out, r)
	}
	return out, nil
}
