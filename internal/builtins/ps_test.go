package builtins

import (
	"context"
	"testing"
)

// ps enumerates live host processes via gopsutil, so its output is
// inherently host-dependent; this only checks it runs cleanly and
// produces records shaped as documented, not specific process content.
func TestPsProducesWellShapedRecords(t *testing.T) {
	out, err := ps(context.Background(), testParams(nil, nil))
	if err != nil {
		t.Fatalf("ps: %v", err)
	}
	for _, r := range out {
		for _, key := range []string{"pid", "name", "cpu_percent", "rss"} {
			if _, ok := r.Get(key); !ok {
				t.Fatalf("ps record missing key %q: %v", key, r.Keys())
			}
		}
	}
}
