package builtins

import (
	"testing"

	"vsh/internal/record"
)

func TestCountEmitsOneRecordWithTotal(t *testing.T) {
	in := record.Stream{rec("a", record.Int(1)), rec("a", record.Int(2)), rec("a", record.Int(3))}
	out := mustRun(count, nil, in)
	if len(out) != 1 {
		t.Fatalf("count should emit exactly 1 record, got %d", len(out))
	}
	v, _ := out[0].Get("count")
	if v.Int() != 3 {
		t.Fatalf("count = %d, want 3", v.Int())
	}
}

func TestCountOfEmptyInputIsZero(t *testing.T) {
	out := mustRun(count, nil, record.Stream{})
	v, _ := out[0].Get("count")
	if v.Int() != 0 {
		t.Fatalf("count of empty stream = %d, want 0", v.Int())
	}
}

func TestSumAllIntegralStaysInt(t *testing.T) {
	in := record.Stream{rec("n", record.Int(1)), rec("n", record.Int(2)), rec("n", record.Int(3))}
	out := mustRun(sum, []string{"n"}, in)
	v, _ := out[0].Get("sum")
	if v.Kind() != record.KindInt || v.Int() != 6 {
		t.Fatalf("sum = %v, want Int(6)", v)
	}
}

func TestSumWithAnyFloatContributionBecomesFloat(t *testing.T) {
	in := record.Stream{rec("n", record.Int(1)), rec("n", record.Float(1.5))}
	out := mustRun(sum, []string{"n"}, in)
	v, _ := out[0].Get("sum")
	if v.Kind() != record.KindFloat || v.Float() != 2.5 {
		t.Fatalf("sum = %v, want Float(2.5)", v)
	}
}

func TestSumSkipsMissingField(t *testing.T) {
	in := record.Stream{rec("n", record.Int(1)), rec("other", record.Int(99))}
	out := mustRun(sum, []string{"n"}, in)
	v, _ := out[0].Get("sum")
	if v.Int() != 1 {
		t.Fatalf("sum should skip records missing the field, got %d", v.Int())
	}
}

func TestMinMaxTieBrokenByInputOrder(t *testing.T) {
	a := rec("n", record.Int(1), "tag", record.String("first"))
	b := rec("n", record.Int(1), "tag", record.String("second"))
	in := record.Stream{a, b}
	out := mustRun(minCmd, []string{"n"}, in)
	tag, _ := out[0].Get("tag")
	if tag.Str() != "first" {
		t.Fatalf("min should keep the first of tied records, got %q", tag.Str())
	}
}

func TestMaxPicksLargest(t *testing.T) {
	in := record.Stream{rec("n", record.Int(1)), rec("n", record.Int(5)), rec("n", record.Int(3))}
	out := mustRun(maxCmd, []string{"n"}, in)
	v, _ := out[0].Get("n")
	if v.Int() != 5 {
		t.Fatalf("max n = %d, want 5", v.Int())
	}
}

func TestMinOfEmptyInputEmitsNothing(t *testing.T) {
	out := mustRun(minCmd, []string{"n"}, record.Stream{})
	if len(out) != 0 {
		t.Fatalf("min of empty input should emit nothing, got %d records", len(out))
	}
}
