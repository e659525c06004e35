package builtins

import (
	"context"
	"testing"

	"vsh/internal/record"
)

func TestEchoNoInputBuildsRecordFromArgs(t *testing.T) {
	out := mustRun(echo, []string{"k=v", "flag"}, nil)
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	v, ok := out[0].Get("k")
	if !ok || v.Str() != "v" {
		t.Fatalf("k = %v, want String(v)", v)
	}
	flag, ok := out[0].Get("flag")
	if !ok || flag.Kind() != record.KindBool || !flag.Bool() {
		t.Fatalf("flag = %v, want Bool(true)", flag)
	}
}

func TestEchoWithInputPassesThrough(t *testing.T) {
	in := record.Stream{rec("a", record.Int(1))}
	out := mustRun(echo, []string{"ignored"}, in)
	if len(out) != 1 || out[0] != in[0] {
		t.Fatal("echo with upstream input must pass records through unchanged and ignore args")
	}
}

func TestEchoWithEmptyUpstreamStaysEmpty(t *testing.T) {
	// Distinguishes "no upstream at all" (nil input key) from "upstream
	// ran and produced zero records" (present, empty input key).
	params := testParams([]string{"k=v"}, record.Stream{})
	out, err := echo(context.Background(), params)
	if err != nil {
		t.Fatalf("echo: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected echo to stay empty when upstream produced zero records, got %v", out)
	}
}
