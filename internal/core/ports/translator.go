package ports

import "github.com/goterm/goterm/internal/core/domain/nlrule"

// Translator rewrites free-form text into a builtin command line.
type Translator interface {
	// Translate applies the ordered rule list, first match wins. A miss
	// returns an error wrapping command.ErrUnrecognizedInput.
	Translate(text string) (nlrule.Match, error)
}
