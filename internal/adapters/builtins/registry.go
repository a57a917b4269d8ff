package builtins

import (
	"fmt"
	"sort"

	"github.com/goterm/goterm/internal/core/ports"
)

// nlpCommandName is dispatched by the interpreter itself because it has to
// resubmit a synthesized line; it is listed here so help and completion
// still know about it.
const nlpCommandName = "nlp"

// Registry is the static table of builtin commands.
// It implements the ports.BuiltinRegistry interface.
type Registry struct {
	handlers map[string]ports.BuiltinHandler
	names    []string
}

// NewRegistry creates the builtin command table. It panics if historyStore
// or inspector is nil.
func NewRegistry(historyStore ports.HistoryStore, inspector ports.SystemInspector) ports.BuiltinRegistry {
	if historyStore == nil {
		panic("historyStore cannot be nil")
	}
	if inspector == nil {
		panic("inspector cannot be nil")
	}

	r := &Registry{handlers: map[string]ports.BuiltinHandler{
		"ls":    lsHandler,
		"cd":    cdHandler,
		"pwd":   pwdHandler,
		"cls":   clearHandler,
		"clear": clearHandler,
		"mkdir": mkdirHandler,
		"rm":    rmHandler,
		"rmdir": rmdirHandler,
		"cat":   catHandler,
		"echo":  echoHandler,
		"touch": touchHandler,
		"mv":    mvHandler,
		"cp":    cpHandler,
		"exit":  exitHandler,
		"quit":  exitHandler,
		"cpu":   cpuHandler(inspector),
		"mem":   memHandler(inspector),
		"ps":    psHandler(inspector),
		"top":   topHandler(inspector),
	}}
	r.handlers["history"] = historyHandler(historyStore)
	r.handlers["help"] = helpHandler(r)

	r.names = make([]string, 0, len(r.handlers)+1)
	for name := range r.handlers {
		r.names = append(r.names, name)
	}
	r.names = append(r.names, nlpCommandName)
	sort.Strings(r.names)

	return r
}

// Lookup implements the ports.BuiltinRegistry interface.
func (r *Registry) Lookup(name string) (ports.BuiltinHandler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names implements the ports.BuiltinRegistry interface.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Validate implements the ports.BuiltinRegistry interface.
func (r *Registry) Validate() error {
	for name, h := range r.handlers {
		if h == nil {
			return fmt.Errorf("builtin %q has no handler", name)
		}
	}
	return nil
}
