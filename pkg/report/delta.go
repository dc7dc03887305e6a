package report

import (
	"fmt"
	"strings"

	"github.com/srodi/proctop/pkg/collector/memory"
	"github.com/srodi/proctop/pkg/snapshot"
	"github.com/srodi/proctop/pkg/types"
)

// RegressionPolicy decides what happens when a PID's tick counter goes backwards
// between snapshots, which means the PID was reused by a different process.
type RegressionPolicy int

const (
	// ClampRegression treats the negative delta as zero and keeps the row.
	ClampRegression RegressionPolicy = iota
	// DropRegression omits the row for that cycle.
	DropRegression
)

// ParseRegressionPolicy accepts "clamp" (also the empty string) or "drop".
func ParseRegressionPolicy(s string) (RegressionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clamp":
		return ClampRegression, nil
	case "drop":
		return DropRegression, nil
	default:
		return ClampRegression, fmt.Errorf("unknown counter regression policy %q (want clamp or drop)", s)
	}
}

func (p RegressionPolicy) String() string {
	if p == DropRegression {
		return "drop"
	}
	return "clamp"
}

// Options tune Derive.
type Options struct {
	Regression RegressionPolicy
}

// Stats counts what Derive saw in one cycle. It never changes the rows.
type Stats struct {
	Considered int // pids present in the current snapshot
	New        int // present now, absent before; no baseline yet
	Vanished   int // present before, gone now
	Regressed  int // tick counter went backwards
	Unnamed    int // empty command name
	Suppressed int // below both visibility thresholds
	Emitted    int
}

// Derive correlates two snapshots taken one interval apart and returns a row
// per process that existed in both. Rows are in ascending PID order; callers
// sort for display.
func Derive(prev, curr snapshot.Snapshot, opts Options) ([]types.DerivedRow, Stats) {
	var stats Stats

	// A non-positive system delta yields 0% for every process this cycle.
	var systemDelta float64
	if now, before := curr.System().Ticks, prev.System().Ticks; now > before {
		systemDelta = float64(now - before)
	}

	pids := curr.PIDs()
	stats.Considered = len(pids)
	rows := make([]types.DerivedRow, 0, len(pids))
	for _, pid := range pids {
		after, _ := curr.Get(pid)
		before, ok := prev.Get(pid)
		if !ok {
			stats.New++
			continue
		}

		var procDelta float64
		if after.CPUTicks >= before.CPUTicks {
			procDelta = float64(after.CPUTicks - before.CPUTicks)
		} else {
			stats.Regressed++
			if opts.Regression == DropRegression {
				continue
			}
		}

		if after.Comm == "" {
			stats.Unnamed++
			continue
		}

		var cpuPercent float64
		if systemDelta > 0 {
			cpuPercent = 100.0 * procDelta / systemDelta
		}
		memoryMB := memory.KBToMB(after.ResidentKB)

		if !Visible(cpuPercent, memoryMB) {
			stats.Suppressed++
			continue
		}
		rows = append(rows, types.DerivedRow{
			PID:        pid,
			Comm:       after.Comm,
			MemoryMB:   memoryMB,
			CPUPercent: cpuPercent,
		})
	}

	for _, pid := range prev.PIDs() {
		if _, ok := curr.Get(pid); !ok {
			stats.Vanished++
		}
	}
	stats.Emitted = len(rows)
	return rows, stats
}

// Visible reports whether a row clears either display threshold.
func Visible(cpuPercent, memoryMB float64) bool {
	return cpuPercent > types.VisibilityThreshold || memoryMB > types.VisibilityThreshold
}
