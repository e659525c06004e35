package builtins

import (
	"testing"

	"vsh/internal/record"
)

func TestSortAscendingNumeric(t *testing.T) {
	in := record.Stream{
		rec("n", record.Int(3)),
		rec("n", record.Int(1)),
		rec("n", record.Int(2)),
	}
	out := mustRun(sortCmd, []string{"n"}, in)
	want := []int64{1, 2, 3}
	for i, r := range out {
		v, _ := r.Get("n")
		if v.Int() != want[i] {
			t.Fatalf("sort[%d] = %d, want %d", i, v.Int(), want[i])
		}
	}
}

func TestSortDescendingPrefix(t *testing.T) {
	in := record.Stream{rec("n", record.Int(1)), rec("n", record.Int(3)), rec("n", record.Int(2))}
	out := mustRun(sortCmd, []string{"-n"}, in)
	want := []int64{3, 2, 1}
	for i, r := range out {
		v, _ := r.Get("n")
		if v.Int() != want[i] {
			t.Fatalf("sort -n [%d] = %d, want %d", i, v.Int(), want[i])
		}
	}
}

func TestSortMissingValuesSortLast(t *testing.T) {
	in := record.Stream{rec("n", record.Int(1)), rec("other", record.Int(1)), rec("n", record.Int(0))}
	out := mustRun(sortCmd, []string{"n"}, in)
	if _, ok := out[len(out)-1].Get("n"); ok {
		t.Fatal("the record missing the sort key should sort last")
	}
}

func TestReverseUndoesItself(t *testing.T) {
	in := record.Stream{rec("n", record.Int(1)), rec("n", record.Int(2))}
	once := mustRun(reverseCmd, nil, in)
	twice := mustRun(reverseCmd, nil, once)
	for i := range in {
		a, _ := in[i].Get("n")
		b, _ := twice[i].Get("n")
		if a.Int() != b.Int() {
			t.Fatalf("reverse(reverse(x)) != x at index %d", i)
		}
	}
}

func TestUniqWholeRecordVsFields(t *testing.T) {
	in := record.Stream{
		rec("a", record.Int(1), "b", record.Int(1)),
		rec("a", record.Int(1), "b", record.Int(2)),
	}
	byWhole := mustRun(uniqCmd, nil, in)
	if len(byWhole) != 2 {
		t.Fatalf("uniq with no fields should keep distinct whole records, got %d", len(byWhole))
	}
	byField := mustRun(uniqCmd, []string{"a"}, in)
	if len(byField) != 1 {
		t.Fatalf("uniq a should collapse to 1 record sharing a=1, got %d", len(byField))
	}
}

func TestHeadTailDefaultAndZero(t *testing.T) {
	in := make(record.Stream, 15)
	for i := range in {
		in[i] = rec("i", record.Int(int64(i)))
	}
	if got := mustRun(head, nil, in); len(got) != 10 {
		t.Fatalf("head default = %d records, want 10", len(got))
	}
	if got := mustRun(tail, nil, in); len(got) != 10 {
		t.Fatalf("tail default = %d records, want 10", len(got))
	}
	if got := mustRun(head, []string{"0"}, in); len(got) != 0 {
		t.Fatalf("head 0 = %d records, want 0 (empty stream, not an error)", len(got))
	}
}

func TestEnumeratePrependsIndex(t *testing.T) {
	in := record.Stream{rec("x", record.String("a")), rec("x", record.String("b"))}
	out := mustRun(enumerate, nil, in)
	first, _ := out[0].Get("index")
	second, _ := out[1].Get("index")
	if first.Int() != 0 || second.Int() != 1 {
		t.Fatalf("index values = %d, %d, want 0, 1", first.Int(), second.Int())
	}
	if out[0].Keys()[0] != "index" {
		t.Fatalf("index must be the first key, got %v", out[0].Keys())
	}
}
