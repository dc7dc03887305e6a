package report

import (
	"sort"
	"strings"

	"github.com/srodi/proctop/pkg/types"
)

// FilterConfig controls which derived rows reach the screen.
type FilterConfig struct {
	HideKernel bool // drop kernel threads such as kworker and ksoftirqd
	TopK       int  // 0 keeps every row
}

// SortByCPU orders rows by CPU percent, highest first. The sort is stable, so
// ties keep their incoming order (ascending PID when fed straight from Derive).
func SortByCPU(rows []types.DerivedRow) []types.DerivedRow {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CPUPercent > rows[j].CPUPercent })
	return rows
}

// FilterRows applies the kernel-thread filter and then the row limit, keeping order.
func FilterRows(rows []types.DerivedRow, cfg FilterConfig) []types.DerivedRow {
	filtered := rows
	if cfg.HideKernel {
		filtered = make([]types.DerivedRow, 0, len(rows))
		for _, row := range rows {
			if !isKernelThread(row.Comm) {
				filtered = append(filtered, row)
			}
		}
	}
	if cfg.TopK > 0 && len(filtered) > cfg.TopK {
		filtered = filtered[:cfg.TopK]
	}
	return filtered
}

func isKernelThread(comm string) bool {
	name := strings.ToLower(comm)
	switch {
	case strings.HasPrefix(name, "kworker"), strings.HasPrefix(name, "ksoftirqd"), strings.HasPrefix(name, "kthreadd"),
		strings.HasPrefix(name, "migration"), strings.HasPrefix(name, "watchdog"), strings.HasPrefix(name, "rcu"),
		strings.HasPrefix(name, "irq/"):
		return true
	}
	return false
}
