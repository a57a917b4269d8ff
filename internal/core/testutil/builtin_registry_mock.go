package testutil

import "github.com/goterm/goterm/internal/core/ports"

// MockBuiltinRegistry is a mock implementation of ports.BuiltinRegistry
// backed by a plain handler map.
type MockBuiltinRegistry struct {
	Handlers     map[string]ports.BuiltinHandler
	NamesFunc    func() []string
	ValidateFunc func() error
}

// Lookup returns the handler from the Handlers map.
func (m *MockBuiltinRegistry) Lookup(name string) (ports.BuiltinHandler, bool) {
	h, ok := m.Handlers[name]
	return h, ok
}

// Names calls NamesFunc or lists the Handlers map keys.
func (m *MockBuiltinRegistry) Names() []string {
	if m.NamesFunc != nil {
		return m.NamesFunc()
	}
	names := make([]string, 0, len(m.Handlers))
	for name := range m.Handlers {
		names = append(names, name)
	}
	return names
}

// Validate calls ValidateFunc or reports success.
func (m *MockBuiltinRegistry) Validate() error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc()
	}
	return nil
}
