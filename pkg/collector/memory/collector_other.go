//go:build !linux

package memory

import "github.com/shirou/gopsutil/v3/process"

// Collector reads resident memory through gopsutil on platforms without procfs.
type Collector struct{}

// NewCollector ignores procRoot; the platform accounting source has no mount point.
func NewCollector(procRoot string) (*Collector, error) {
	return &Collector{}, nil
}

// ResidentKB returns the resident set size for pid in kilobytes, or 0 when unavailable.
func (c *Collector) ResidentKB(pid int) uint64 {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return 0
	}
	info, err := proc.MemoryInfo()
	if err != nil || info == nil {
		return 0
	}
	return info.RSS / 1024
}
