// Package proctable enumerates the process namespace and reads one raw
// accounting sample per process.
package proctable

import (
	"iter"

	"github.com/srodi/proctop/pkg/collector/cpu"
	"github.com/srodi/proctop/pkg/collector/memory"
	"github.com/srodi/proctop/pkg/types"
)

// Collector combines CPU ticks, command name and resident memory per PID.
type Collector struct {
	source
	cpu    *cpu.Collector
	memory *memory.Collector
}

// NewCollector opens every accounting source under procRoot.
func NewCollector(procRoot string) (*Collector, error) {
	src, err := newSource(procRoot)
	if err != nil {
		return nil, err
	}
	cpuCollector, err := cpu.NewCollector(procRoot)
	if err != nil {
		return nil, err
	}
	memCollector, err := memory.NewCollector(procRoot)
	if err != nil {
		return nil, err
	}
	return &Collector{source: src, cpu: cpuCollector, memory: memCollector}, nil
}

// CPU returns the collector backing ReadProcess. It also serves the
// aggregate system counters, so one source covers both readers.
func (c *Collector) CPU() *cpu.Collector { return c.cpu }

// PIDs enumerates the process identifiers that exist at the time of the call.
// Entries that are not numeric identifiers are never yielded. The sequence
// reflects that single listing; call PIDs again for a fresh view.
func (c *Collector) PIDs() (iter.Seq[int], error) {
	pids, err := c.listPIDs()
	if err != nil {
		return nil, err
	}
	return func(yield func(int) bool) {
		for _, pid := range pids {
			if pid <= 0 {
				continue
			}
			if !yield(pid) {
				return
			}
		}
	}, nil
}

// ReadProcess samples pid. ok is false when the process exited between
// enumeration and the read; that race is expected and is not an error.
// Comm is left empty and ResidentKB zero when only those reads fail.
func (c *Collector) ReadProcess(pid int) (types.ProcessCounters, bool) {
	ticks, ok := c.cpu.ProcessTicks(pid)
	if !ok {
		return types.ProcessCounters{}, false
	}
	return types.ProcessCounters{
		PID:        pid,
		CPUTicks:   ticks,
		Comm:       c.comm(pid),
		ResidentKB: c.memory.ResidentKB(pid),
	}, true
}
