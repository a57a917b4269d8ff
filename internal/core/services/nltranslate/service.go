package nltranslate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goterm/goterm/internal/core/domain/command"
	"github.com/goterm/goterm/internal/core/domain/nlrule"
	"github.com/goterm/goterm/internal/core/ports"
)

type compiledRule struct {
	rule nlrule.Rule
	re   *regexp.Regexp
}

type service struct {
	rules []compiledRule
}

// NewService creates a new natural-language translation service, compiling
// the provider's rule list once up front. It panics if ruleProvider is nil.
func NewService(ruleProvider ports.RuleProvider) (ports.Translator, error) {
	if ruleProvider == nil {
		panic("ruleProvider cannot be nil")
	}

	rules, err := ruleProvider.Rules()
	if err != nil {
		return nil, fmt.Errorf("loading translation rules: %w", err)
	}

	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling rule %q: %w", r.Name, err)
		}
		compiled = append(compiled, compiledRule{rule: r, re: re})
	}
	return &service{rules: compiled}, nil
}

// Translate implements the ports.Translator interface. Matching is
// case-insensitive by lowercasing the input first, like the phrases the
// rule table is written against. The first matching rule wins; extracted
// fragments are expanded into the rule's template.
func (s *service) Translate(text string) (nlrule.Match, error) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return nlrule.Match{}, fmt.Errorf("%w: empty input", command.ErrUnrecognizedInput)
	}

	for _, cr := range s.rules {
		idx := cr.re.FindStringSubmatchIndex(lowered)
		if idx == nil {
			continue
		}
		expanded := cr.re.ExpandString(nil, cr.rule.Template, lowered, idx)
		cmd := strings.Join(strings.Fields(string(expanded)), " ")
		if cmd == "" {
			continue
		}
		return nlrule.Match{Rule: cr.rule, Command: cmd}, nil
	}

	return nlrule.Match{}, fmt.Errorf("%w: %q", command.ErrUnrecognizedInput, text)
}
