package testutil

import (
	"context"
	"errors"
)

// MockDispatcher is a mock implementation of ports.Dispatcher.
type MockDispatcher struct {
	ExecuteFunc func(ctx context.Context, line string) (string, error)
	DirFunc     func() string
	Calls       []string
}

// Execute records the line and calls the mock ExecuteFunc.
func (m *MockDispatcher) Execute(ctx context.Context, line string) (string, error) {
	m.Calls = append(m.Calls, line)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, line)
	}
	return "", errors.New("MockDispatcher.ExecuteFunc not implemented")
}

// Dir calls the mock DirFunc or returns a fixed placeholder.
func (m *MockDispatcher) Dir() string {
	if m.DirFunc != nil {
		return m.DirFunc()
	}
	return "/"
}
