package builtins

import (
	"context"

	"github.com/shirou/gopsutil/v4/process"

	"vsh/internal/record"
)

const psDoc = `ps
Originating command (like ls): takes no input, emits one record per
running process: {pid: Int, name: String, cpu_percent: Float, rss: Int}.
Processes whose metadata cannot be read are silently skipped.`

func ps(_ context.Context, _ *record.Record) (record.Stream, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	out := make(record.Stream, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		cpuPct, err := p.CPUPercent()
		if err != nil {
			continue
		}
		mem, err := p.MemoryInfo()
		if err != nil {
			continue
		}
		r := record.New()
		r.Set("pid", record.Int(int64(p.Pid)))
		r.Set("name", record.String(name))
		r.Set("cpu_percent", record.Float(cpuPct))
		r.Set("rss", record.Int(int64(mem.RSS)))
		out = append(out, r)
	}
	return out, nil
}
