package testutil

import (
	"errors"
	"strings"

	"github.com/goterm/goterm/internal/core/domain/command"
)

// MockLineParser is a mock implementation of ports.LineParser.
// With no funcs set, Parse splits on whitespace and Split returns the
// whole line as one statement, which is enough for most dispatch tests.
type MockLineParser struct {
	ParseFunc func(line string) ([]string, error)
	SplitFunc func(line string) []command.Statement
}

// Parse calls the mock ParseFunc or falls back to strings.Fields.
func (m *MockLineParser) Parse(line string) ([]string, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(line)
	}
	if line == "" {
		return nil, errors.New("MockLineParser: empty line")
	}
	return strings.Fields(line), nil
}

// Split calls the mock SplitFunc or returns the trimmed line unsplit.
func (m *MockLineParser) Split(line string) []command.Statement {
	if m.SplitFunc != nil {
		return m.SplitFunc(line)
	}
	text := strings.TrimSpace(line)
	if text == "" {
		return nil
	}
	return []command.Statement{{Text: text}}
}
