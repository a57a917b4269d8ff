package testutil

import (
	"errors"

	"github.com/goterm/goterm/internal/core/domain/nlrule"
)

// MockRuleProvider is a mock implementation of ports.RuleProvider.
type MockRuleProvider struct {
	RulesFunc func() ([]nlrule.Rule, error)
}

// Rules calls the mock RulesFunc.
func (m *MockRuleProvider) Rules() ([]nlrule.Rule, error) {
	if m.RulesFunc != nil {
		return m.RulesFunc()
	}
	return nil, errors.New("MockRuleProvider.RulesFunc not implemented")
}
