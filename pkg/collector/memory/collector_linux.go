//go:build linux

package memory

import (
	"fmt"

	"github.com/prometheus/procfs"
)

// Collector reads per-process resident memory from the status record.
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

// ResidentKB returns VmRSS for pid in kilobytes, or 0 when unavailable.
// Kernel threads have no VmRSS line and report 0.
func (c *Collector) ResidentKB(pid int) uint64 {
	proc, err := c.fs.Proc(pid)
	if err != nil {
		return 0
	}
	status, err := proc.NewStatus()
	if err != nil {
		return 0
	}
	// procfs scales the kB field to bytes.
	return status.VmRSS / 1024
}
