package ports

import "github.com/goterm/goterm/internal/core/domain/command"

// LineParser turns raw input into statements and tokens.
type LineParser interface {
	// Parse tokenizes a single statement, honoring single quotes, double
	// quotes, and backslash escapes.
	Parse(line string) ([]string, error)
	// Split breaks an input line on ';' and '&&' outside quotes,
	// preserving order.
	Split(line string) []command.Statement
}
