// filter.go holds the record-filtering commands: grep and where.
package builtins

import (
	"context"
	"regexp"
	"strings"

	"vsh/internal/record"
)

const grepDoc = `grep field=pattern...
Keeps each record where, for every argument, pattern occurs as a
substring of the string rendering of the referenced field (dotted paths
allowed). Records missing a referenced field fail that clause.`

func grep(_ context.Context, params *record.Record) (record.Stream, error) {
	argv := argsOf(params)
	type clause struct {
		path    []string
		pattern string
	}
	clauses := make([]clause, 0, len(argv))
	for _, a := range argv {
		field, pattern, ok := strings.Cut(a, "=")
		if !ok {
			return nil, invalidParam(a)
		}
		clauses = append(clauses, clause{path: splitPath(field), pattern: pattern})
	}

	in := inputOf(params)
	out := make(record.Stream, 0, len(in))
	for _, rec := range in {
		keep := true
		for _, c := range clauses {
			v, ok := renderDotted(rec, c.path)
			if !ok || !strings.Contains(v.Render(), c.pattern) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, rec)
		}
	}
	return out, nil
}

const whereDoc = `where conds...
Each condition is "lhs OP rhs" where OP is one of = != > < >= <= ~.
= and != compare string renderings; > < >= <= compare numerically when
both sides parse as numbers, else lexically; ~ matches rhs as a regular
expression against the resolved field. Missing fields fail any
comparison. Multiple conditions are ANDed.`

var whereOpRe = regexp.MustCompile(`^(.+?)\s*(!=|>=|<=|=|>|<|~)\s*(.*)$`)

type whereCond struct {
	path []string
	op   string
	rhs  string
}

func parseWhereConds(argv []string) ([]whereCond, error) {
	conds := make([]whereCond, 0, len(argv))
	for _, a := range argv {
		m := whereOpRe.FindStringSubmatch(a)
		if m == nil {
			return nil, invalidParam(a)
		}
		conds = append(conds, whereCond{path: splitPath(m[1]), op: m[2], rhs: m[3]})
	}
	return conds, nil
}

func where(_ context.Context, params *record.Record) (record.Stream, error) {
	conds, err := parseWhereConds(argsOf(params))
	if err != nil {
		return nil, err
	}
	in := inputOf(params)
	out := make(record.Stream, 0, len(in))
	for _, rec := range in {
		if matchesAll(rec, conds) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func matchesAll(rec *record.Record, conds []whereCond) bool {
	for _, c := range conds {
		v, ok := renderDotted(rec, c.path)
		if !ok {
			return false
		}
		if !matchesOne(v, c.op, c.rhs) {
			return false
		}
	}
	return true
}

func matchesOne(v record.Value, op, rhs string) bool {
	lhs := v.Render()
	switch op {
	case "=":
		return lhs == rhs
	case "!=":
		return lhs != rhs
	case "~":
		re, err := regexp.Compile(rhs)
		if err != nil {
			return false
		}
		return re.MatchString(lhs)
	case ">", "<", ">=", "<=":
		lf, lok := parseNumber(lhs)
		rf, rok := parseNumber(rhs)
		if lok && rok {
			return compareFloat(lf, rf, op)
		}
		return compareString(lhs, rhs, op)
	default:
		return false
	}
}

func compareFloat(a, b float64, op string) bool {
	switch op {
	case ">":
		return a > b
	case "<":
		return a < b
	case ">=":
		return a >= b
	case "<=":
		return a <= b
	}
	return false
}

func compareString(a, b, op string) bool {
	switch op {
	case ">":
		return a > b
	case "<":
		return a < b
	case ">=":
		return a >= b
	case "<=":
		return a <= b
	}
	return false
}
