package ports

import (
	"context"

	"github.com/goterm/goterm/internal/core/domain/sysinfo"
)

// SystemInspector provides the snapshots behind the monitoring builtins.
type SystemInspector interface {
	CPU(ctx context.Context) (sysinfo.CPUStats, error)
	Memory(ctx context.Context) (sysinfo.MemoryStats, error)
	// Processes returns running processes sorted by descending CPU usage.
	Processes(ctx context.Context) ([]sysinfo.ProcessInfo, error)
}
