package lineparser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/goterm/goterm/internal/core/domain/command"
	"github.com/goterm/goterm/internal/core/ports"
)

// Tokenization failures are InvalidArgument at the dispatch boundary.
var (
	ErrUnclosedQuote  = fmt.Errorf("%w: unclosed quote", command.ErrInvalidArgument)
	ErrTrailingEscape = fmt.Errorf("%w: trailing escape character", command.ErrInvalidArgument)
)

type parseState int

const (
	stateOutside parseState = iota
	stateSingleQuote
	stateDoubleQuote
)

// Parser is a quote-aware tokenizer and statement splitter.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() ports.LineParser {
	return &Parser{}
}

// Parse tokenizes a single statement. Single quotes preserve everything
// literally; double quotes allow backslash escapes of '\' and '"';
// a backslash outside quotes escapes the next rune.
func (p *Parser) Parse(line string) ([]string, error) {
	var (
		tokens   []string
		buf      strings.Builder
		state    = stateOutside
		escaping bool
		// A token is emitted on whitespace only when buf is non-empty,
		// except that an empty quoted string ("" or '') is a real token.
		quotedEmpty bool
	)

	flush := func() {
		if buf.Len() > 0 || quotedEmpty {
			tokens = append(tokens, buf.String())
			buf.Reset()
			quotedEmpty = false
		}
	}

	for _, ch := range line {
		switch state {
		case stateOutside:
			switch {
			case escaping:
				buf.WriteRune(ch)
				escaping = false
			case unicode.IsSpace(ch):
				flush()
			case ch == '\'':
				state = stateSingleQuote
				quotedEmpty = true
			case ch == '"':
				state = stateDoubleQuote
				quotedEmpty = true
			case ch == '\\':
				escaping = true
			default:
				buf.WriteRune(ch)
			}
		case stateSingleQuote:
			if ch == '\'' {
				state = stateOutside
			} else {
				buf.WriteRune(ch)
			}
		case stateDoubleQuote:
			switch {
			case escaping:
				if ch != '\\' && ch != '"' {
					buf.WriteRune('\\')
				}
				buf.WriteRune(ch)
				escaping = false
			case ch == '"':
				state = stateOutside
			case ch == '\\':
				escaping = true
			default:
				buf.WriteRune(ch)
			}
		}
	}

	if state != stateOutside {
		return nil, ErrUnclosedQuote
	}
	if escaping {
		return nil, ErrTrailingEscape
	}
	flush()

	return tokens, nil
}

// Split breaks an input line on ';' and '&&' outside quotes, preserving
// order. Statements after '&&' are marked conditional: they run only if
// the previous statement succeeded.
func (p *Parser) Split(line string) []command.Statement {
	var (
		stmts       []command.Statement
		buf         strings.Builder
		state       = stateOutside
		escaping    bool
		conditional bool
	)

	emit := func(nextConditional bool) {
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		if text != "" {
			stmts = append(stmts, command.Statement{Text: text, Conditional: conditional})
		}
		conditional = nextConditional
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if state == stateOutside && !escaping {
			switch {
			case ch == ';':
				emit(false)
				continue
			case ch == '&' && i+1 < len(runes) && runes[i+1] == '&':
				emit(true)
				i++
				continue
			case ch == '\'':
				state = stateSingleQuote
			case ch == '"':
				state = stateDoubleQuote
			case ch == '\\':
				escaping = true
			}
			buf.WriteRune(ch)
			continue
		}

		switch state {
		case stateSingleQuote:
			if ch == '\'' {
				state = stateOutside
			}
		case stateDoubleQuote:
			if escaping {
				escaping = false
			} else if ch == '\\' {
				escaping = true
			} else if ch == '"' {
				state = stateOutside
			}
		case stateOutside:
			// Reached only while escaping.
			escaping = false
		}
		buf.WriteRune(ch)
	}
	emit(false)

	return stmts
}
