package record

import "testing"

func TestRecordSetPreservesInsertionOrder(t *testing.T) {
	r := New()
	r.Set("b", Int(2))
	r.Set("a", Int(1))
	r.Set("b", Int(20)) // overwrite keeps position

	got := r.Keys()
	want := []string{"b", "a"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	v, _ := r.Get("b")
	if v.Int() != 20 {
		t.Fatalf("Get(b) = %d, want 20", v.Int())
	}
}

func TestRecordEqualIgnoresOrder(t *testing.T) {
	a := New().Set("x", Int(1)).Set("y", String("z"))
	b := New().Set("y", String("z")).Set("x", Int(1))
	if !a.Equal(b) {
		t.Fatal("expected records with same keys/values in different order to be equal")
	}
}

func TestRecordSameSchemaRequiresOrder(t *testing.T) {
	a := New().Set("x", Int(1)).Set("y", Int(2))
	b := New().Set("y", Int(2)).Set("x", Int(1))
	if a.SameSchema(b) {
		t.Fatal("SameSchema should require identical key order, not just identical key sets")
	}
	c := New().Set("x", Int(9)).Set("y", Int(9))
	if !a.SameSchema(c) {
		t.Fatal("SameSchema should ignore values, only compare key order")
	}
}

func TestResolveNestedPath(t *testing.T) {
	inner := New().Set("city", String("nyc"))
	outer := New().Set("addr", Nested(inner))

	v, ok := Resolve(outer, []string{"addr", "city"})
	if !ok || v.Str() != "nyc" {
		t.Fatalf("Resolve(addr.city) = (%v, %v), want (nyc, true)", v, ok)
	}

	if _, ok := Resolve(outer, []string{"addr", "zip"}); ok {
		t.Fatal("Resolve should fail on a missing leaf key")
	}
	if _, ok := Resolve(outer, []string{"addr", "city", "extra"}); ok {
		t.Fatal("Resolve should fail when an intermediate value is not a Record")
	}
}

func TestValueRenderRules(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Bool(true), "True"},
		{Bool(false), "False"},
		{Int(42), "42"},
		{String("hi"), "hi"},
	}
	for _, c := range cases {
		if got := c.v.Render(); got != c.want {
			t.Errorf("Render(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestValueEqual(t *testing.T) {
	if !Equal(List([]Value{Int(1), String("a")}), List([]Value{Int(1), String("a")})) {
		t.Fatal("expected identical lists to be equal")
	}
	if Equal(Int(1), Float(1)) {
		t.Fatal("Int and Float of the same magnitude must not be Equal: kinds differ")
	}
}
