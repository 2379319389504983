package host

import (
	"context"
	"log/slog"

	gounits "github.com/docker/go-units"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/NVIDIA/gpu-probe/pkg/defaults"
	"github.com/NVIDIA/gpu-probe/pkg/errors"
)

// Document keys.
const (
	KeyCPUNum   = "cpu.num"
	KeyMemTotal = "mem.total"
)

// Info is the host system summary.
type Info struct {
	// CPUNum is the number of logical CPUs.
	CPUNum int `json:"cpu.num" yaml:"cpu.num"`
	// MemTotal is total physical memory in bytes.
	MemTotal uint64 `json:"mem.total" yaml:"mem.total"`
}

// Fields returns the info as top-level document entries.
func (i *Info) Fields() map[string]any {
	return map[string]any{
		KeyCPUNum:   i.CPUNum,
		KeyMemTotal: i.MemTotal,
	}
}

// Collector gathers Info. Zero value queries the running host.
type Collector struct {
	// CPUCounts overrides cpu.CountsWithContext.
	CPUCounts func(ctx context.Context, logical bool) (int, error)
	// VirtualMemory overrides mem.VirtualMemoryWithContext.
	VirtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

// Collect reads CPU and memory totals within defaults.HostCollectorTimeout.
func (c *Collector) Collect(ctx context.Context) (*Info, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.HostCollectorTimeout)
	defer cancel()

	counts := c.CPUCounts
	if counts == nil {
		counts = cpu.CountsWithContext
	}
	vm := c.VirtualMemory
	if vm == nil {
		vm = mem.VirtualMemoryWithContext
	}

	n, err := counts(ctx, true)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to count CPUs", err)
	}

	stat, err := vm(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to read virtual memory", err)
	}

	info := &Info{CPUNum: n, MemTotal: stat.Total}
	slog.Debug("collected host info", "cpus", info.CPUNum, "memory", gounits.BytesSize(float64(info.MemTotal)))
	return info, nil
}
