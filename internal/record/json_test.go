package record

import "testing"

func TestDecodeIntVsFloat(t *testing.T) {
	v, err := Decode([]byte(`{"a": 1, "b": 1.5, "c": 1e2}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	rec := v.Record()

	a, _ := rec.Get("a")
	if a.Kind() != KindInt || a.Int() != 1 {
		t.Errorf("a = %v, want Int(1)", a)
	}
	b, _ := rec.Get("b")
	if b.Kind() != KindFloat {
		t.Errorf("b kind = %v, want KindFloat", b.Kind())
	}
	c, _ := rec.Get("c")
	if c.Kind() != KindFloat {
		t.Errorf("c (exponent form) kind = %v, want KindFloat", c.Kind())
	}
}

func TestDecodeNullBecomesAbsence(t *testing.T) {
	v, err := Decode([]byte(`{"a": 1, "b": null}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	rec := v.Record()
	if _, ok := rec.Get("b"); ok {
		t.Fatal("a null-valued JSON key must not appear in the decoded Record")
	}
	if rec.Len() != 1 {
		t.Fatalf("expected exactly 1 key after dropping null, got %d", rec.Len())
	}
}

func TestMarshalRoundTripsOrder(t *testing.T) {
	rec := New().Set("z", Int(1)).Set("a", Int(2))
	data, err := RecordToJSON(rec)
	if err != nil {
		t.Fatalf("RecordToJSON: %v", err)
	}
	want := `{"z":1,"a":2}`
	if string(data) != want {
		t.Fatalf("RecordToJSON = %s, want %s", data, want)
	}
}

func TestDecodeRecordRejectsNonObject(t *testing.T) {
	if _, err := DecodeRecord([]byte(`[1,2,3]`)); err == nil {
		t.Fatal("expected an error decoding a JSON array as a Record")
	}
}

func TestDecodePreservesSourceKeyOrder(t *testing.T) {
	rec, err := DecodeRecord([]byte(`{"z": 1, "m": 2, "a": 3, "q": 4}`))
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	want := []string{"z", "m", "a", "q"}
	got := rec.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("Keys()[%d] = %q, want %q (decode must preserve source document order, not map iteration order)", i, got[i], k)
		}
	}
}

func TestDecodePreservesNestedObjectKeyOrder(t *testing.T) {
	rec, err := DecodeRecord([]byte(`{"outer": {"z": 1, "a": 2}}`))
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	outer, ok := rec.Get("outer")
	if !ok || outer.Kind() != KindRecord {
		t.Fatalf("outer = %v, want a nested Record", outer)
	}
	keys := outer.Record().Keys()
	if len(keys) != 2 || keys[0] != "z" || keys[1] != "a" {
		t.Fatalf("nested Keys() = %v, want [z a]", keys)
	}
}
