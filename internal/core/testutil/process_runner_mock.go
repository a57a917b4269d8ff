package testutil

import (
	"context"
	"errors"
)

// MockProcessRunner is a mock implementation of ports.ProcessRunner.
type MockProcessRunner struct {
	RunFunc func(ctx context.Context, dir string, argv []string) (string, error)
	Calls   [][]string
}

// Run records the argv and calls the mock RunFunc.
func (m *MockProcessRunner) Run(ctx context.Context, dir string, argv []string) (string, error) {
	m.Calls = append(m.Calls, argv)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, dir, argv)
	}
	return "", errors.New("MockProcessRunner.RunFunc not implemented")
}
