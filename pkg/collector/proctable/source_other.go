//go:build !linux

package proctable

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

type source struct{}

func newSource(string) (source, error) {
	return source{}, nil
}

func (source) listPIDs() ([]int, error) {
	raw, err := process.Pids()
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}
	pids := make([]int, 0, len(raw))
	for _, pid := range raw {
		pids = append(pids, int(pid))
	}
	return pids, nil
}

func (source) comm(pid int) string {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return ""
	}
	name, err := proc.Name()
	if err != nil {
		return ""
	}
	return name
}
