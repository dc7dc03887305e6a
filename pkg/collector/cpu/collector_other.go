//go:build !linux

package cpu

import (
	"errors"
	"fmt"

	pscpu "github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/srodi/proctop/pkg/types"
)

var errNoTotals = errors.New("no aggregate cpu times reported")

// Collector reads CPU accounting through gopsutil on platforms without procfs.
type Collector struct{}

// NewCollector ignores procRoot; the platform accounting source has no mount point.
func NewCollector(procRoot string) (*Collector, error) {
	return &Collector{}, nil
}

// SystemCounters returns the aggregate tick total across all CPUs.
func (c *Collector) SystemCounters() (types.SystemCounters, error) {
	all, err := pscpu.Times(false)
	if err != nil {
		return types.SystemCounters{}, fmt.Errorf("reading system cpu times: %w", err)
	}
	if len(all) == 0 {
		return types.SystemCounters{}, errNoTotals
	}
	t := all[0]
	times := Times{
		User:    t.User,
		Nice:    t.Nice,
		System:  t.System,
		Idle:    t.Idle,
		Iowait:  t.Iowait,
		IRQ:     t.Irq,
		SoftIRQ: t.Softirq,
		Steal:   t.Steal,
	}
	return types.SystemCounters{Ticks: times.Ticks()}, nil
}

// ProcessTicks returns user+system time for pid in ticks.
func (c *Collector) ProcessTicks(pid int) (uint64, bool) {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return 0, false
	}
	times, err := proc.Times()
	if err != nil {
		return 0, false
	}
	return secondsToTicks(times.User + times.System), true
}
