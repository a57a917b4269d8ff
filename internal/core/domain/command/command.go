package command

// Statement is one piece of an input line after splitting on ';' and '&&'.
type Statement struct {
	Text        string
	Conditional bool // preceded by '&&': run only if the previous statement succeeded
}

// ExecEnv carries per-invocation state into a builtin handler.
// The working directory is passed by value rather than held as process
// state, so handlers never mutate anything shared.
type ExecEnv struct {
	Dir string // absolute, cleaned working directory
}

// Result is the outcome of executing a single command.
type Result struct {
	Output string
	Dir    string // working directory after the command; empty means unchanged
}
