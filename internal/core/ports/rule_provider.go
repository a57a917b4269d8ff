package ports

import "github.com/goterm/goterm/internal/core/domain/nlrule"

// RuleProvider supplies the ordered natural-language rule list.
type RuleProvider interface {
	Rules() ([]nlrule.Rule, error)
}
