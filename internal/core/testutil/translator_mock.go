package testutil

import (
	"errors"

	"github.com/goterm/goterm/internal/core/domain/nlrule"
)

// MockTranslator is a mock implementation of ports.Translator.
type MockTranslator struct {
	TranslateFunc func(text string) (nlrule.Match, error)
	Calls         []string
}

// Translate records the input and calls the mock TranslateFunc.
func (m *MockTranslator) Translate(text string) (nlrule.Match, error) {
	m.Calls = append(m.Calls, text)
	if m.TranslateFunc != nil {
		return m.TranslateFunc(text)
	}
	return nlrule.Match{}, errors.New("MockTranslator.TranslateFunc not implemented")
}
