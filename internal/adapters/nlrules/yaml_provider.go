package nlrules

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/goterm/goterm/internal/core/domain/nlrule"
	"github.com/goterm/goterm/internal/core/ports"
)

// YAMLProvider supplies the translation rule list: user rules read from a
// YAML file, followed by the built-in defaults. User rules come first so
// they can shadow a default phrasing.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider. filePath may name a file
// that does not exist; that simply means no user rules.
func NewYAMLProvider(filePath string) (ports.RuleProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("rules file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// Rules implements the ports.RuleProvider interface.
func (p *YAMLProvider) Rules() ([]nlrule.Rule, error) {
	userRules, err := p.loadUserRules()
	if err != nil {
		return nil, err
	}
	return append(userRules, defaultRules...), nil
}

// loadUserRules reads and validates rules from the configured YAML file.
// A missing or empty file yields no rules and no error. Rules with a
// pattern that does not compile are skipped with a warning rather than
// poisoning the whole table.
func (p *YAMLProvider) loadUserRules() ([]nlrule.Rule, error) {
	raw, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read rules file %s: %w", p.filePath, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	var loaded []nlrule.Rule
	if err := decoder.Decode(&loaded); err != nil {
		if errors.Is(err, io.EOF) {
			// A file of only comments or "---" decodes to nothing.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to unmarshal rules from %s: %w", p.filePath, err)
	}

	valid := loaded[:0]
	for _, r := range loaded {
		if _, err := regexp.Compile(r.Pattern); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping rule %q from %s: %v\n", r.Name, p.filePath, err)
			continue
		}
		valid = append(valid, r)
	}
	return valid, nil
}
