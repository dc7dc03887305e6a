// Package snapshot captures the raw system and per-process counters at one
// instant. A Snapshot never changes after it is built.
package snapshot

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/srodi/proctop/pkg/types"
)

// SystemReader returns the aggregate CPU tick total.
type SystemReader interface {
	SystemCounters() (types.SystemCounters, error)
}

// TableReader enumerates processes and samples each one.
type TableReader interface {
	PIDs() (iter.Seq[int], error)
	ReadProcess(pid int) (types.ProcessCounters, bool)
}

// Snapshot pairs the system counters with every readable process at time Taken.
type Snapshot struct {
	taken  time.Time
	system types.SystemCounters
	procs  map[int]types.ProcessCounters
	pids   []int
}

// New builds a Snapshot. When a PID repeats, the first sample wins.
func New(taken time.Time, system types.SystemCounters, samples []types.ProcessCounters) Snapshot {
	procs := make(map[int]types.ProcessCounters, len(samples))
	pids := make([]int, 0, len(samples))
	for _, s := range samples {
		if _, dup := procs[s.PID]; dup {
			continue
		}
		procs[s.PID] = s
		pids = append(pids, s.PID)
	}
	slices.Sort(pids)
	return Snapshot{taken: taken, system: system, procs: procs, pids: pids}
}

// Capture reads the system counters and then every process. It always returns
// a usable Snapshot: an unreadable system source yields a zero reading and a
// failed enumeration yields an empty table. The returned error only reports
// which source degraded.
func Capture(sys SystemReader, table TableReader, now time.Time) (Snapshot, error) {
	var errs []error

	system, err := sys.SystemCounters()
	if err != nil {
		system = types.SystemCounters{}
		errs = append(errs, err)
	}

	var samples []types.ProcessCounters
	pids, err := table.PIDs()
	if err != nil {
		errs = append(errs, fmt.Errorf("enumerating processes: %w", err))
	} else {
		for pid := range pids {
			if sample, ok := table.ReadProcess(pid); ok {
				samples = append(samples, sample)
			}
		}
	}

	return New(now, system, samples), errors.Join(errs...)
}

// Get returns the counters for pid.
func (s Snapshot) Get(pid int) (types.ProcessCounters, bool) {
	p, ok := s.procs[pid]
	return p, ok
}

// PIDs returns the captured identifiers in ascending order.
func (s Snapshot) PIDs() []int {
	return slices.Clone(s.pids)
}

// Len is the number of captured processes.
func (s Snapshot) Len() int { return len(s.pids) }

// System returns the aggregate counters paired with this snapshot.
func (s Snapshot) System() types.SystemCounters { return s.system }

// Taken is the wall-clock instant of the capture.
func (s Snapshot) Taken() time.Time { return s.taken }

// IsZero reports whether s was never captured.
func (s Snapshot) IsZero() bool { return s.procs == nil && s.taken.IsZero() }
