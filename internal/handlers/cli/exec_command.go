package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goterm/goterm/internal/core/domain/command"
	"github.com/spf13/cobra"
)

// NewExecCommand creates the command that runs a single input line and
// exits, for scripting and quick one-offs.
func NewExecCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <line>",
		Short: "Run one command line and exit",
		Long: `Run one command line through the interpreter and exit.

The line goes through the same pipeline as interactive input: builtins,
external programs, and natural language translation all apply.`,
		Example: `  goterm exec ls
  goterm exec "mkdir build && cd build"
  goterm exec "nlp create a file called notes.txt"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExecCmd(cmd, opts, strings.Join(args, " "))
		},
	}
}

func runExecCmd(cmd *cobra.Command, opts *options, line string) error {
	interp, err := buildInterpreter(opts)
	if err != nil {
		return err
	}

	output, err := interp.dispatcher.Execute(cmd.Context(), line)
	if output != "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	// A session exit request is a normal end of the line, not a failure.
	var exitErr *command.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}
