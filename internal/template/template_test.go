package template

import (
	"testing"

	"vsh/internal/record"
)

func TestSingleReferencePreservesType(t *testing.T) {
	rec := record.New().Set("n", record.Int(5))
	tmpl := Parse("{n}")
	if !tmpl.SingleRef() {
		t.Fatal("expected {n} to be a single reference")
	}
	v, ok := Eval(tmpl, rec)
	if !ok || v.Kind() != record.KindInt || v.Int() != 5 {
		t.Fatalf("Eval({n}) = (%v, %v), want (Int(5), true)", v, ok)
	}
}

func TestMultiSegmentRendersToString(t *testing.T) {
	rec := record.New().Set("n", record.Int(5))
	tmpl := Parse("value={n}!")
	if tmpl.SingleRef() {
		t.Fatal("expected a mixed template not to be a single reference")
	}
	v, ok := Eval(tmpl, rec)
	if !ok || v.Kind() != record.KindString || v.Str() != "value=5!" {
		t.Fatalf("Eval(value={n}!) = (%v, %v), want (String(value=5!), true)", v, ok)
	}
}

func TestEvalMissingReferenceFails(t *testing.T) {
	rec := record.New()
	if _, ok := Eval(Parse("{missing}"), rec); ok {
		t.Fatal("Eval should fail when the referenced path is missing")
	}
	if _, ok := Eval(Parse("x{missing}y"), rec); ok {
		t.Fatal("Eval should fail when any referenced path in a mixed template is missing")
	}
}

func TestEvalForeachSubstitutesEmptyForMissing(t *testing.T) {
	rec := record.New().Set("name", record.String("vsh"))
	got := EvalForeach(Parse("hello {name} {missing}!"), rec)
	want := "hello vsh !"
	if got != want {
		t.Fatalf("EvalForeach = %q, want %q", got, want)
	}
}

func TestEvalForeachQuotedAppliesQuoteOnlyToReferences(t *testing.T) {
	rec := record.New().Set("name", record.String("a b"))
	quote := func(s string) string { return "<" + s + ">" }
	got := EvalForeachQuoted(Parse("echo {name} literal"), rec, quote)
	want := "echo <a b> literal"
	if got != want {
		t.Fatalf("EvalForeachQuoted = %q, want %q", got, want)
	}
}

func TestParseDottedPath(t *testing.T) {
	tmpl := Parse("{a.b.c}")
	if !tmpl.SingleRef() {
		t.Fatal("expected a dotted reference to parse as single-ref")
	}
	path := tmpl.Path()
	if len(path) != 3 || path[0] != "a" || path[1] != "b" || path[2] != "c" {
		t.Fatalf("Path() = %v, want [a b c]", path)
	}
}

func TestParseMalformedBraceIsLiteral(t *testing.T) {
	rec := record.New()
	tmpl := Parse("{ not valid }")
	v, ok := Eval(tmpl, rec)
	if !ok {
		t.Fatal("a malformed reference should parse as literal text, not fail")
	}
	if v.Str() != "{ not valid }" {
		t.Fatalf("Eval(malformed) = %q, want literal passthrough", v.Str())
	}
}
