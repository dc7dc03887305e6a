//go:build linux

package cpu

import (
	"fmt"

	"github.com/prometheus/procfs"

	"github.com/srodi/proctop/pkg/types"
)

// Collector reads CPU accounting from a mounted proc filesystem.
type Collector struct {
	fs procfs.FS
}

// NewCollector opens the proc filesystem mounted at procRoot.
func NewCollector(procRoot string) (*Collector, error) {
	if procRoot == "" {
		procRoot = procfs.DefaultMountPoint
	}
	fs, err := procfs.NewFS(procRoot)
	if err != nil {
		return nil, fmt.Errorf("opening proc filesystem %s: %w", procRoot, err)
	}
	return &Collector{fs: fs}, nil
}

// SystemCounters returns the aggregate tick total from the first line of stat.
func (c *Collector) SystemCounters() (types.SystemCounters, error) {
	stat, err := c.fs.Stat()
	if err != nil {
		return types.SystemCounters{}, fmt.Errorf("reading system cpu stat: %w", err)
	}
	total := stat.CPUTotal
	times := Times{
		User:    total.User,
		Nice:    total.Nice,
		System:  total.System,
		Idle:    total.Idle,
		Iowait:  total.Iowait,
		IRQ:     total.IRQ,
		SoftIRQ: total.SoftIRQ,
		Steal:   total.Steal,
	}
	return types.SystemCounters{Ticks: times.Ticks()}, nil
}

// ProcessTicks returns utime+stime for pid. ok is false when the process is gone
// or its stat record could not be parsed.
func (c *Collector) ProcessTicks(pid int) (ticks uint64, ok bool) {
	proc, err := c.fs.Proc(pid)
	if err != nil {
		return 0, false
	}
	stat, err := proc.Stat()
	if err != nil {
		return 0, false
	}
	return uint64(stat.UTime) + uint64(stat.STime), true
}
