package ports

import "context"

// ProcessRunner executes an external command without shell interpretation.
type ProcessRunner interface {
	// Run starts argv[0] with argv[1:] in dir, inheriting the
	// environment, and returns combined stdout and stderr. A failure to
	// start because the binary does not exist wraps
	// command.ErrProcessStart.
	Run(ctx context.Context, dir string, argv []string) (string, error)
}
