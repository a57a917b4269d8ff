package testutil

import (
	"context"
	"errors"

	"github.com/goterm/goterm/internal/core/domain/sysinfo"
)

// MockSystemInspector is a mock implementation of ports.SystemInspector.
type MockSystemInspector struct {
	CPUFunc       func(ctx context.Context) (sysinfo.CPUStats, error)
	MemoryFunc    func(ctx context.Context) (sysinfo.MemoryStats, error)
	ProcessesFunc func(ctx context.Context) ([]sysinfo.ProcessInfo, error)
}

// CPU calls the mock CPUFunc.
func (m *MockSystemInspector) CPU(ctx context.Context) (sysinfo.CPUStats, error) {
	if m.CPUFunc != nil {
		return m.CPUFunc(ctx)
	}
	return sysinfo.CPUStats{}, errors.New("MockSystemInspector.CPUFunc not implemented")
}

// Memory calls the mock MemoryFunc.
func (m *MockSystemInspector) Memory(ctx context.Context) (sysinfo.MemoryStats, error) {
	if m.MemoryFunc != nil {
		return m.MemoryFunc(ctx)
	}
	return sysinfo.MemoryStats{}, errors.New("MockSystemInspector.MemoryFunc not implemented")
}

// Processes calls the mock ProcessesFunc.
func (m *MockSystemInspector) Processes(ctx context.Context) ([]sysinfo.ProcessInfo, error) {
	if m.ProcessesFunc != nil {
		return m.ProcessesFunc(ctx)
	}
	return nil, errors.New("MockSystemInspector.ProcessesFunc not implemented")
}
