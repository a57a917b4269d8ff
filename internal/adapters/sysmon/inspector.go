package sysmon

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/goterm/goterm/internal/core/domain/sysinfo"
	"github.com/goterm/goterm/internal/core/ports"
)

// cpuSampleInterval is how long CPU() observes utilization before
// reporting. Matches the half-second sample the monitoring commands have
// always taken.
const cpuSampleInterval = 500 * time.Millisecond

// Inspector reads CPU, memory, and process information from the host.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() ports.SystemInspector {
	return &Inspector{}
}

// CPU implements the ports.SystemInspector interface.
func (i *Inspector) CPU(ctx context.Context) (sysinfo.CPUStats, error) {
	percents, err := cpu.PercentWithContext(ctx, cpuSampleInterval, false)
	if err != nil {
		return sysinfo.CPUStats{}, fmt.Errorf("sampling cpu utilization: %w", err)
	}
	if len(percents) == 0 {
		return sysinfo.CPUStats{}, fmt.Errorf("sampling cpu utilization: no data")
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return sysinfo.CPUStats{}, fmt.Errorf("counting cpu cores: %w", err)
	}

	return sysinfo.CPUStats{UtilPercent: percents[0], Cores: cores}, nil
}

// Memory implements the ports.SystemInspector interface.
func (i *Inspector) Memory(ctx context.Context) (sysinfo.MemoryStats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return sysinfo.MemoryStats{}, fmt.Errorf("reading virtual memory: %w", err)
	}
	return sysinfo.MemoryStats{
		Total:       vm.Total,
		Available:   vm.Available,
		UsedPercent: vm.UsedPercent,
	}, nil
}

// Processes implements the ports.SystemInspector interface. Processes that
// disappear or deny access mid-scan are skipped.
func (i *Inspector) Processes(ctx context.Context) ([]sysinfo.ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}

	infos := make([]sysinfo.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		user, err := p.UsernameWithContext(ctx)
		if err != nil {
			user = "?"
		}
		cpuPct, err := p.CPUPercentWithContext(ctx)
		if err != nil {
			cpuPct = 0
		}
		infos = append(infos, sysinfo.ProcessInfo{
			PID:        p.Pid,
			User:       user,
			CPUPercent: cpuPct,
			Name:       name,
		})
	}

	sort.Slice(infos, func(a, b int) bool {
		return infos[a].CPUPercent > infos[b].CPUPercent
	})
	return infos, nil
}
