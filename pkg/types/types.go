package types

import "time"

// SampleInterval is the fixed refresh cadence. The delta engine assumes
// consecutive snapshots are this far apart and never measures it.
const SampleInterval = time.Second

// NameWidth is the number of display cells a command name may occupy.
const NameWidth = 18

// VisibilityThreshold is the minimum CPU percent or resident MB a row needs
// before it is shown.
const VisibilityThreshold = 0.01

// ProcessCounters is one raw accounting sample for a single PID.
type ProcessCounters struct {
	PID        int
	CPUTicks   uint64 // utime + stime, in scheduler ticks
	Comm       string // empty when the process exited mid-read
	ResidentKB uint64
}

// SystemCounters is the aggregate CPU tick total across every core and category.
type SystemCounters struct {
	Ticks uint64
}

// DerivedRow is one line of the rendered table.
type DerivedRow struct {
	PID        int
	Comm       string
	MemoryMB   float64
	CPUPercent float64
}
