package ports

import (
	"context"

	"github.com/goterm/goterm/internal/core/domain/command"
)

// BuiltinHandler executes one builtin command. It receives the working
// directory through env and reports a changed directory via Result.Dir.
type BuiltinHandler func(ctx context.Context, env command.ExecEnv, args []string) (command.Result, error)

// BuiltinRegistry is the static table of builtin commands.
type BuiltinRegistry interface {
	Lookup(name string) (BuiltinHandler, bool)
	// Names returns every builtin command name, sorted. It may include
	// names the dispatcher handles itself, so it is a superset of what
	// Lookup can find.
	Names() []string
	// Validate reports an error if any registered name has a nil handler.
	// Called once at startup.
	Validate() error
}
