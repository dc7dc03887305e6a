package memory

// KBToMB converts a resident size in kilobytes to megabytes for display.
// Kilobytes stay the stored unit; this is only used when deriving rows.
func KBToMB(kb uint64) float64 {
	return float64(kb) / 1024.0
}
