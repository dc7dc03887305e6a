//go:build linux

package proctable

import (
	"fmt"

	"github.com/prometheus/procfs"
)

type source struct {
	fs procfs.FS
}

func newSource(procRoot string) (source, error) {
	if procRoot == "" {
		procRoot = procfs.DefaultMountPoint
	}
	fs, err := procfs.NewFS(procRoot)
	if err != nil {
		return source{}, fmt.Errorf("opening proc filesystem %s: %w", procRoot, err)
	}
	return source{fs: fs}, nil
}

// listPIDs returns the numeric directory names under the proc root.
func (s source) listPIDs() ([]int, error) {
	procs, err := s.fs.AllProcs()
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}
	pids := make([]int, 0, len(procs))
	for _, p := range procs {
		pids = append(pids, p.PID)
	}
	return pids, nil
}

func (s source) comm(pid int) string {
	proc, err := s.fs.Proc(pid)
	if err != nil {
		return ""
	}
	name, err := proc.Comm()
	if err != nil {
		return ""
	}
	return name
}
