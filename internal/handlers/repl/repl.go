package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"github.com/goterm/goterm/internal/core/domain/command"
	"github.com/goterm/goterm/internal/core/ports"
	"github.com/goterm/goterm/internal/handlers/ui"
)

// REPL is the interactive read-eval-print loop. It prefers readline for
// history recall and tab completion and falls back to a plain line reader
// when stdin is not a terminal.
type REPL struct {
	dispatcher   ports.Dispatcher
	builtinNames []string
	history      ports.HistoryStore
	out          io.Writer
	errOut       io.Writer
}

// New creates a new REPL. It panics if dispatcher or history is nil.
func New(dispatcher ports.Dispatcher, builtinNames []string, history ports.HistoryStore) *REPL {
	if dispatcher == nil {
		panic("dispatcher cannot be nil")
	}
	if history == nil {
		panic("history cannot be nil")
	}
	return &REPL{
		dispatcher:   dispatcher,
		builtinNames: builtinNames,
		history:      history,
		out:          os.Stdout,
		errOut:       os.Stderr,
	}
}

// Run reads and dispatches lines until EOF or an exit command. Dispatch
// failures are printed and the loop continues; nothing a command does is
// fatal to the loop.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, ui.HeaderColor(fmt.Sprintf("goterm - %s/%s - type 'help' for commands", runtime.GOOS, runtime.GOARCH)))
	fmt.Fprintln(r.out, ui.DetailColor(fmt.Sprintf("history: %s", r.history.Path())))

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return r.runSimple(ctx, os.Stdin)
	}

	rl, err := readline.NewEx(r.readlineConfig())
	if err != nil {
		fmt.Fprintln(r.errOut, ui.WarningColor(fmt.Sprintf("Warning: readline unavailable (%v), falling back to plain input", err)))
		return r.runSimple(ctx, os.Stdin)
	}
	defer rl.Close()
	r.prefillHistory(rl)

	for {
		rl.SetPrompt(r.prompt())
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			// EOF or a closed terminal.
			fmt.Fprintln(r.out, "\nExiting goterm.")
			return nil
		}
		if r.eval(ctx, line) {
			return nil
		}
	}
}

// readlineConfig leaves HistoryFile unset: the history store is the single
// writer of the history file, and readline persisting lines itself would
// record every input twice and rewrite the append-only file. Recall still
// works because prefillHistory seeds readline's in-memory history.
func (r *REPL) readlineConfig() *readline.Config {
	return &readline.Config{
		Prompt:          r.prompt(),
		HistoryLimit:    1000,
		AutoComplete:    newCompleter(r.dispatcher, r.builtinNames),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
}

// historySaver is the slice of readline used to seed recall.
type historySaver interface {
	SaveHistory(content string) error
}

// prefillHistory loads the stored entries into readline's in-memory
// history so arrow-key recall spans previous sessions.
func (r *REPL) prefillHistory(saver historySaver) {
	entries, err := r.history.Load()
	if err != nil {
		fmt.Fprintln(r.errOut, ui.WarningColor(fmt.Sprintf("Warning: could not load history: %v", err)))
		return
	}
	for _, e := range entries {
		if err := saver.SaveHistory(e.Line); err != nil {
			return
		}
	}
}

// runSimple is the non-terminal loop: read a line, dispatch, repeat.
func (r *REPL) runSimple(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, r.prompt())
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if r.eval(ctx, scanner.Text()) {
			return nil
		}
	}
}

// eval dispatches one line and renders the outcome. It reports true when
// the user asked to exit.
func (r *REPL) eval(ctx context.Context, line string) bool {
	out, err := r.dispatcher.Execute(ctx, line)
	if out != "" {
		fmt.Fprintln(r.out, out)
	}
	if err != nil {
		var exitErr *command.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(r.out, "Exiting goterm. History saved.")
			return true
		}
		fmt.Fprintln(r.errOut, ui.ErrorColor(err.Error()))
	}
	return false
}

func (r *REPL) prompt() string {
	base := filepath.Base(r.dispatcher.Dir())
	return ui.PromptColor(base + "$ ")
}
