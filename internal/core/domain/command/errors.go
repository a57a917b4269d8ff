package command

import (
	"errors"
	"fmt"
)

// Failure taxonomy. Every error leaving the dispatch boundary wraps one of
// these sentinels so callers can classify without string matching.
var (
	ErrNotFound          = errors.New("no such file or command")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrProcessStart      = errors.New("could not start process")
	ErrUnrecognizedInput = errors.New("unrecognized input")
)

// ExitError signals that the user asked the interpreter to terminate.
// It is recovered by the interactive loop; the web front end renders it
// as a normal result instead of shutting down.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}
