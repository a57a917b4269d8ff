package cli

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/goterm/goterm/internal/adapters/builtins"
	"github.com/goterm/goterm/internal/adapters/lineparser"
	"github.com/goterm/goterm/internal/adapters/nlrules"
	"github.com/goterm/goterm/internal/adapters/osprocess"
	"github.com/goterm/goterm/internal/adapters/sysmon"
	"github.com/goterm/goterm/internal/core/ports"
	"github.com/goterm/goterm/internal/core/services/dispatch"
	"github.com/goterm/goterm/internal/core/services/nltranslate"
	"github.com/goterm/goterm/internal/repositories/history"
)

const defaultRulesPath = ".goterm/rules.yaml"

// options carries the persistent flag values into interpreter
// construction.
type options struct {
	historyFile string
	rulesFile   string
	execTimeout time.Duration
	noColor     bool
}

// interpreter bundles everything a front end needs.
type interpreter struct {
	dispatcher   ports.Dispatcher
	builtinNames []string
	history      ports.HistoryStore
}

// buildInterpreter wires the adapters, repositories, and services behind
// one dispatcher. Flags decide the history and rules locations and the
// external execution timeout; everything else is fixed.
func buildInterpreter(opts *options) (*interpreter, error) {
	var finder ports.HistoryFileFinder
	if opts.historyFile != "" {
		finder = history.NewFixedPathFinder(opts.historyFile)
	} else {
		finder = history.NewDefaultFileFinder()
	}
	historyStore, err := history.NewStore(finder)
	if err != nil {
		return nil, fmt.Errorf("initializing history store: %w", err)
	}

	rulesPath := opts.rulesFile
	if rulesPath == "" {
		usr, err := user.Current()
		if err != nil {
			return nil, fmt.Errorf("resolving rules file location: %w", err)
		}
		rulesPath = filepath.Join(usr.HomeDir, defaultRulesPath)
	}
	ruleProvider, err := nlrules.NewYAMLProvider(rulesPath)
	if err != nil {
		return nil, fmt.Errorf("initializing rule provider: %w", err)
	}
	translator, err := nltranslate.NewService(ruleProvider)
	if err != nil {
		return nil, fmt.Errorf("initializing translator: %w", err)
	}

	registry := builtins.NewRegistry(historyStore, sysmon.NewInspector())

	startDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("determining working directory: %w", err)
	}

	dispatcher, err := dispatch.NewService(
		lineparser.NewParser(),
		registry,
		osprocess.NewRunner(opts.execTimeout),
		translator,
		historyStore,
		startDir,
	)
	if err != nil {
		return nil, fmt.Errorf("initializing dispatcher: %w", err)
	}

	return &interpreter{
		dispatcher:   dispatcher,
		builtinNames: registry.Names(),
		history:      historyStore,
	}, nil
}
