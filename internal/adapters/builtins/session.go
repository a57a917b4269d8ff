package builtins

import (
	"context"
	"fmt"
	"strings"

	"github.com/goterm/goterm/internal/core/domain/command"
	"github.com/goterm/goterm/internal/core/ports"
)

// ansiClearScreen homes the cursor and clears the terminal. Returned as
// output so it also works through the one-shot and web surfaces.
const ansiClearScreen = "\x1b[H\x1b[2J"

func echoHandler(_ context.Context, _ command.ExecEnv, args []string) (command.Result, error) {
	return command.Result{Output: strings.Join(args, " ")}, nil
}

func clearHandler(_ context.Context, _ command.ExecEnv, _ []string) (command.Result, error) {
	return command.Result{Output: ansiClearScreen}, nil
}

func exitHandler(_ context.Context, _ command.ExecEnv, _ []string) (command.Result, error) {
	return command.Result{}, &command.ExitError{Code: 0}
}

func helpHandler(r *Registry) ports.BuiltinHandler {
	return func(_ context.Context, _ command.ExecEnv, _ []string) (command.Result, error) {
		lines := []string{
			"goterm built-in commands:",
			strings.Join(r.Names(), " "),
			"",
			"Anything else runs as a system command; free-form text goes through",
			"the natural-language translator (try: nlp create a file called demo.txt).",
		}
		return command.Result{Output: strings.Join(lines, "\n")}, nil
	}
}

func historyHandler(store ports.HistoryStore) ports.BuiltinHandler {
	return func(_ context.Context, _ command.ExecEnv, _ []string) (command.Result, error) {
		entries, err := store.Load()
		if err != nil {
			return command.Result{}, fmt.Errorf("cannot read history: %v", err)
		}
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("%5d  %s", e.Index, e.Line))
		}
		return command.Result{Output: strings.Join(lines, "\n")}, nil
	}
}
