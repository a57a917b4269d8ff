package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goterm/goterm/internal/handlers/repl"
)

var rootCmd *cobra.Command

// NewRootCommand creates the goterm command tree. Invoked without a
// subcommand it starts the interactive shell.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	rootCmd = &cobra.Command{
		Use:   "goterm",
		Short: "goterm is an interactive command interpreter.",
		Long: `goterm reads one line at a time and dispatches it to built-in
filesystem and monitoring commands, to the operating system, or through a
rule-based natural-language translator. Every accepted line is appended to
the history file.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, opts)
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.historyFile, "history-file", "", "path of the history file (default $HOME/.goterm_history)")
	pf.StringVar(&opts.rulesFile, "rules-file", "", "path of the natural-language rules file (default $HOME/.goterm/rules.yaml)")
	pf.DurationVar(&opts.execTimeout, "exec-timeout", 0, "timeout for external commands (0 disables)")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(NewExecCommand(opts))
	rootCmd.AddCommand(NewServeCommand(opts))

	return rootCmd
}

// runRootCmd starts the interactive read-eval-print loop.
func runRootCmd(cmd *cobra.Command, opts *options) error {
	interp, err := buildInterpreter(opts)
	if err != nil {
		return err
	}
	loop := repl.New(interp.dispatcher, interp.builtinNames, interp.history)
	return loop.Run(cmd.Context())
}
