// order.go holds the stream-reordering and windowing commands: sort,
// reverse, uniq, head, and tail.
package builtins

import (
	"context"
	"sort"
	"strings"

	"vsh/internal/record"
)

const sortDoc = `sort fields...
Performs a stable multi-key sort. A field prefixed with "-" sorts
descending. Comparison: if both values at that key parse as numbers,
compare numerically; else compare string renderings lexicographically;
missing values sort last.`

type sortKey struct {
	path []string
	desc bool
}

func parseSortKeys(argv []string) []sortKey {
	keys := make([]sortKey, 0, len(argv))
	for _, a := range argv {
		desc := false
		if strings.HasPrefix(a, "-") {
			desc = true
			a = a[1:]
		}
		keys = append(keys, sortKey{path: splitPath(a), desc: desc})
	}
	return keys
}

func sortCmd(_ context.Context, params *record.Record) (record.Stream, error) {
	keys := parseSortKeys(argsOf(params))
	in := inputOf(params)
	out := make(record.Stream, len(in))
	copy(out, in)

	sort.SliceStable(out, func(i, j int) bool {
		for _, k := range keys {
			cmp := compareAt(out[i], out[j], k.path)
			if cmp == 0 {
				continue
			}
			_, aok := renderDotted(out[i], k.path)
			_, bok := renderDotted(out[j], k.path)
			if k.desc && aok && bok {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
	return out, nil
}

// compareAt returns -1, 0, or 1 comparing rec a and b at path, with
// missing values sorting last regardless of direction.
func compareAt(a, b *record.Record, path []string) int {
	va, aok := renderDotted(a, path)
	vb, bok := renderDotted(b, path)
	if !aok && !bok {
		return 0
	}
	if !aok {
		return 1
	}
	if !bok {
		return -1
	}
	na, aNum := va.Number()
	if !aNum {
		na, aNum = parseNumber(va.Render())
	}
	nb, bNum := vb.Number()
	if !bNum {
		nb, bNum = parseNumber(vb.Render())
	}
	if aNum && bNum {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	sa, sb := va.Render(), vb.Render()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

const reverseDoc = `reverse
Emits the input in reversed order.`

func reverseCmd(_ context.Context, params *record.Record) (record.Stream, error) {
	in := inputOf(params)
	out := make(record.Stream, len(in))
	for i, rec := range in {
		out[len(in)-1-i] = rec
	}
	return out, nil
}

const uniqDoc = `uniq [fields...]
Removes duplicates, keeping the first occurrence. With fields, equality
is measured on the tuple of those fields' values; without, on the whole
record.`

func uniqCmd(_ context.Context, params *record.Record) (record.Stream, error) {
	argv := argsOf(params)
	in := inputOf(params)
	out := make(record.Stream, 0, len(in))
	seen := make([]string, 0, len(in))

	for _, rec := range in {
		key := uniqKey(rec, argv)
		dup := false
		for _, s := range seen {
			if s == key {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, key)
			out = append(out, rec)
		}
	}
	return out, nil
}

func uniqKey(rec *record.Record, fields []string) string {
	if len(fields) == 0 {
		data, _ := record.RecordToJSON(rec)
		return string(data)
	}
	var sb strings.Builder
	for _, f := range fields {
		v, ok := renderDotted(rec, splitPath(f))
		sb.WriteByte('\x00')
		if ok {
			sb.WriteString(v.Render())
		}
	}
	return sb.String()
}

const headDoc = `head [n]
Takes the first n input records (default 10).`

func head(_ context.Context, params *record.Record) (record.Stream, error) {
	n, err := countArg(argsOf(params), 10)
	if err != nil {
		return nil, err
	}
	in := inputOf(params)
	if n > len(in) {
		n = len(in)
	}
	return in[:n], nil
}

const tailDoc = `tail [n]
Takes the last n input records (default 10).`

func tail(_ context.Context, params *record.Record) (record.Stream, error) {
	n, err := countArg(argsOf(params), 10)
	if err != nil {
		return nil, err
	}
	in := inputOf(params)
	if n > len(in) {
		n = len(in)
	}
	return in[len(in)-n:], nil
}

func countArg(argv []string, def int) (int, error) {
	if len(argv) == 0 {
		return def, nil
	}
	f, ok := parseNumber(argv[0])
	if !ok || f < 0 {
		return 0, invalidParam(argv[0])
	}
	return int(f), nil
}

const enumerateDoc = `enumerate
Prepends an index: Int key (0-based) to each input record.`

func enumerate(_ context.Context, params *record.Record) (record.Stream, error) {
	in := inputOf(params)
	out := make(record.Stream, 0, len(in))
	for i, rec := range in {
		r := record.New()
		r.Set("index", record.Int(int64(i)))
		for _, k := range rec.Keys() {
			v, _ := rec.Get(k)
			r.Set(k, v)
		}
		out = append(out, r)
	}
	return out, nil
}
