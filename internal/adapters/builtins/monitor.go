package builtins

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/goterm/goterm/internal/core/domain/command"
	"github.com/goterm/goterm/internal/core/ports"
)

// psProcessLimit caps the listing at the busiest processes.
const psProcessLimit = 20

func cpuHandler(inspector ports.SystemInspector) ports.BuiltinHandler {
	return func(ctx context.Context, _ command.ExecEnv, _ []string) (command.Result, error) {
		stats, err := inspector.CPU(ctx)
		if err != nil {
			return command.Result{}, fmt.Errorf("cannot read cpu stats: %v", err)
		}
		out := fmt.Sprintf("CPU percent: %.1f%%\nCores: %d", stats.UtilPercent, stats.Cores)
		return command.Result{Output: out}, nil
	}
}

func memHandler(inspector ports.SystemInspector) ports.BuiltinHandler {
	return func(ctx context.Context, _ command.ExecEnv, _ []string) (command.Result, error) {
		stats, err := inspector.Memory(ctx)
		if err != nil {
			return command.Result{}, fmt.Errorf("cannot read memory stats: %v", err)
		}
		return command.Result{Output: formatMemory(stats.Total, stats.Available, stats.UsedPercent)}, nil
	}
}

func psHandler(inspector ports.SystemInspector) ports.BuiltinHandler {
	return func(ctx context.Context, _ command.ExecEnv, _ []string) (command.Result, error) {
		out, err := formatProcessTable(ctx, inspector)
		if err != nil {
			return command.Result{}, err
		}
		return command.Result{Output: out}, nil
	}
}

// topHandler is a one-shot snapshot: the process table plus memory, no
// refresh loop.
func topHandler(inspector ports.SystemInspector) ports.BuiltinHandler {
	return func(ctx context.Context, _ command.ExecEnv, _ []string) (command.Result, error) {
		procs, err := formatProcessTable(ctx, inspector)
		if err != nil {
			return command.Result{}, err
		}
		stats, err := inspector.Memory(ctx)
		if err != nil {
			return command.Result{}, fmt.Errorf("cannot read memory stats: %v", err)
		}
		out := procs + "\n\n" + formatMemory(stats.Total, stats.Available, stats.UsedPercent)
		return command.Result{Output: out}, nil
	}
}

func formatMemory(total, available uint64, usedPercent float64) string {
	return fmt.Sprintf("Total: %d bytes\nAvailable: %d bytes\nUsed%%: %.1f%%", total, available, usedPercent)
}

func formatProcessTable(ctx context.Context, inspector ports.SystemInspector) (string, error) {
	procs, err := inspector.Processes(ctx)
	if err != nil {
		return "", fmt.Errorf("cannot list processes: %v", err)
	}
	if len(procs) > psProcessLimit {
		procs = procs[:psProcessLimit]
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"PID", "User", "CPU%", "Name"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, p := range procs {
		table.Append([]string{
			fmt.Sprintf("%d", p.PID),
			p.User,
			fmt.Sprintf("%.1f", p.CPUPercent),
			p.Name,
		})
	}
	table.Render()

	return strings.TrimRight(buf.String(), "\n"), nil
}
