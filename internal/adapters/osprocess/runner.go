package osprocess

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/goterm/goterm/internal/core/domain/command"
	"github.com/goterm/goterm/internal/core/ports"
)

// Runner executes external commands directly from an argv, never through a
// shell, so no token is ever re-interpreted.
type Runner struct {
	timeout time.Duration // 0 means no timeout
}

// NewRunner creates a new Runner. A non-zero timeout bounds each external
// command's execution.
func NewRunner(timeout time.Duration) ports.ProcessRunner {
	return &Runner{timeout: timeout}
}

// Run implements the ports.ProcessRunner interface. It returns combined
// stdout and stderr; on a nonzero exit the captured output is still
// returned alongside the error.
func (r *Runner) Run(ctx context.Context, dir string, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("%w: empty command", command.ErrInvalidArgument)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s: command not found", command.ErrProcessStart, argv[0])
		}
		if errors.Is(err, os.ErrPermission) {
			return "", fmt.Errorf("%s: %w", argv[0], command.ErrPermissionDenied)
		}
		return "", fmt.Errorf("starting %s: %v", argv[0], err)
	}

	err := cmd.Wait()
	out := strings.TrimRight(buf.String(), "\n")

	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		// Only claim our own timeout; the caller's context may carry a
		// deadline of its own.
		if r.timeout > 0 {
			return out, fmt.Errorf("%s: timed out after %s", argv[0], r.timeout)
		}
		return out, fmt.Errorf("%s: %v", argv[0], ctxErr)
	}
	if err != nil {
		return out, fmt.Errorf("%s: %v", argv[0], err)
	}
	return out, nil
}
