package testutil

import "github.com/goterm/goterm/internal/core/domain/history"

// MockHistoryStore is a mock implementation of ports.HistoryStore.
// With no funcs set it records appended lines in memory.
type MockHistoryStore struct {
	AppendFunc func(line string) error
	LoadFunc   func() ([]history.Entry, error)
	PathFunc   func() string

	Appended []string
}

// Append records the line and calls the mock AppendFunc if set.
func (m *MockHistoryStore) Append(line string) error {
	m.Appended = append(m.Appended, line)
	if m.AppendFunc != nil {
		return m.AppendFunc(line)
	}
	return nil
}

// Load calls the mock LoadFunc or replays the recorded lines.
func (m *MockHistoryStore) Load() ([]history.Entry, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	entries := make([]history.Entry, 0, len(m.Appended))
	for i, line := range m.Appended {
		entries = append(entries, history.Entry{Index: i + 1, Line: line})
	}
	return entries, nil
}

// Path calls the mock PathFunc or returns a fixed placeholder.
func (m *MockHistoryStore) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return "/tmp/goterm_history_mock"
}
