package sysinfo

// CPUStats is a point-in-time CPU utilization snapshot.
type CPUStats struct {
	UtilPercent float64
	Cores       int // logical cores
}

// MemoryStats describes virtual memory usage in bytes.
type MemoryStats struct {
	Total       uint64
	Available   uint64
	UsedPercent float64
}

// ProcessInfo is one row of a process listing.
type ProcessInfo struct {
	PID        int32
	User       string
	CPUPercent float64
	Name       string
}
