package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goterm/goterm/internal/core/domain/command"
	"github.com/goterm/goterm/internal/core/ports"
)

// nlpCommandName triggers an explicit translation. It is handled here
// rather than in the builtin table because the synthesized line has to be
// resubmitted through the dispatcher.
const nlpCommandName = "nlp"

type service struct {
	parser     ports.LineParser
	builtins   ports.BuiltinRegistry
	runner     ports.ProcessRunner
	translator ports.Translator
	history    ports.HistoryStore

	// The interpreter's working directory. Handlers receive it by value
	// and report changes through Result.Dir; nothing else mutates it.
	dir string
}

// NewService creates the dispatch service. It panics if any dependency is
// nil, validates the builtin table, and resolves startDir to an absolute
// path.
func NewService(
	parser ports.LineParser,
	builtins ports.BuiltinRegistry,
	runner ports.ProcessRunner,
	translator ports.Translator,
	historyStore ports.HistoryStore,
	startDir string,
) (ports.Dispatcher, error) {
	if parser == nil {
		panic("parser cannot be nil")
	}
	if builtins == nil {
		panic("builtins cannot be nil")
	}
	if runner == nil {
		panic("runner cannot be nil")
	}
	if translator == nil {
		panic("translator cannot be nil")
	}
	if historyStore == nil {
		panic("historyStore cannot be nil")
	}

	if err := builtins.Validate(); err != nil {
		return nil, fmt.Errorf("invalid builtin table: %w", err)
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolving start directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("start directory %q is not a directory", startDir)
	}

	return &service{
		parser:     parser,
		builtins:   builtins,
		runner:     runner,
		translator: translator,
		history:    historyStore,
		dir:        filepath.Clean(abs),
	}, nil
}

// Execute implements the ports.Dispatcher interface. Blank lines are not
// accepted; every other line is recorded in history before execution, so
// failed commands count too.
func (s *service) Execute(ctx context.Context, line string) (string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", nil
	}

	if err := s.history.Append(trimmed); err != nil {
		// The history sink is independent of command success; a broken
		// history file must not block the interpreter.
		fmt.Fprintf(os.Stderr, "Warning: could not record history: %v\n", err)
	}

	return s.run(ctx, trimmed, false)
}

// Dir implements the ports.Dispatcher interface.
func (s *service) Dir() string {
	return s.dir
}

// run executes every statement of an already-accepted line. Statements
// after '&&' only run while everything before them succeeded.
func (s *service) run(ctx context.Context, text string, fromNL bool) (string, error) {
	var (
		outputs []string
		lastErr error
	)
	for _, st := range s.parser.Split(text) {
		if st.Conditional && lastErr != nil {
			break
		}
		out, err := s.executeStatement(ctx, st.Text, fromNL)
		if out != "" {
			outputs = append(outputs, out)
		}
		var exitErr *command.ExitError
		if errors.As(err, &exitErr) {
			return strings.Join(outputs, "\n"), err
		}
		lastErr = err
	}
	return strings.Join(outputs, "\n"), lastErr
}

// executeStatement resolves one statement: builtin table first, then
// external execution, then the natural-language fallback. A line that
// already came out of the translator is never translated again.
func (s *service) executeStatement(ctx context.Context, text string, fromNL bool) (string, error) {
	tokens, err := s.parser.Parse(text)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", nil
	}
	name, args := tokens[0], tokens[1:]

	if name == nlpCommandName && !fromNL {
		return s.translateAndRun(ctx, strings.Join(args, " "), true)
	}

	if handler, ok := s.builtins.Lookup(name); ok {
		res, err := handler(ctx, command.ExecEnv{Dir: s.dir}, args)
		if err != nil {
			var exitErr *command.ExitError
			if errors.As(err, &exitErr) {
				return "", err
			}
			return "", fmt.Errorf("%s: %w", name, err)
		}
		if res.Dir != "" {
			s.dir = res.Dir
		}
		return res.Output, nil
	}

	out, err := s.runner.Run(ctx, s.dir, tokens)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, command.ErrProcessStart) {
		// The process started and failed; that is its result, not a
		// reason to guess at natural language.
		return out, err
	}

	if fromNL {
		return "", fmt.Errorf("%s: %w", name, command.ErrNotFound)
	}
	return s.translateAndRun(ctx, text, false)
}

// translateAndRun feeds text through the translator and resubmits the
// synthesized line exactly once. For an explicit nlp invocation a silent
// success still reports what was executed.
func (s *service) translateAndRun(ctx context.Context, text string, explicit bool) (string, error) {
	match, err := s.translator.Translate(text)
	if err != nil {
		return "", err
	}

	out, err := s.run(ctx, match.Command, true)
	if err != nil {
		return out, err
	}
	if explicit && out == "" {
		return "Executed: " + match.Command, nil
	}
	return out, nil
}
