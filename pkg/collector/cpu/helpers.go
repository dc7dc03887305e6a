package cpu

import "math"

// clockTicks is USER_HZ. Both procfs and gopsutil report CPU time as seconds
// already divided by it, so the readers multiply back to recover ticks.
const clockTicks = 100

// Times holds the standard /proc/stat CPU categories, in seconds.
// Guest time is already folded into user and nice by the kernel and is not listed.
type Times struct {
	User    float64
	Nice    float64
	System  float64
	Idle    float64
	Iowait  float64
	IRQ     float64
	SoftIRQ float64
	Steal   float64
}

// Ticks sums every category and converts the total back to scheduler ticks.
func (t Times) Ticks() uint64 {
	return secondsToTicks(t.User + t.Nice + t.System + t.Idle + t.Iowait + t.IRQ + t.SoftIRQ + t.Steal)
}

func secondsToTicks(seconds float64) uint64 {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}
	return uint64(math.Round(seconds * clockTicks))
}
