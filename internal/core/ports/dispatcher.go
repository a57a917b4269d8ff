package ports

import "context"

// Dispatcher routes one input line to a builtin handler, an external
// process, or the natural-language translator, in that order.
type Dispatcher interface {
	// Execute runs a full input line and returns its rendered output.
	// Errors wrap the command failure taxonomy and never terminate the
	// caller's loop.
	Execute(ctx context.Context, line string) (string, error)
	// Dir reports the current working directory of the interpreter.
	Dir() string
}
