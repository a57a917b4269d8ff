package osprocess

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/goterm/goterm/internal/core/domain/command"
)

func TestRunner_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("tests rely on POSIX utilities")
	}

	r := NewRunner(0)
	ctx := context.Background()

	t.Run("captures stdout", func(t *testing.T) {
		out, err := r.Run(ctx, t.TempDir(), []string{"echo", "hello"})
		if err != nil {
			t.Fatalf("Run() unexpected error: %v", err)
		}
		if out != "hello" {
			t.Errorf("Run() output = %q, want %q", out, "hello")
		}
	})

	t.Run("runs in the given directory", func(t *testing.T) {
		dir := t.TempDir()
		out, err := r.Run(ctx, dir, []string{"pwd"})
		if err != nil {
			t.Fatalf("Run() unexpected error: %v", err)
		}
		// pwd may report a symlink-resolved variant of the temp dir.
		if !strings.HasSuffix(out, "/"+dirBase(dir)) {
			t.Errorf("Run() output = %q, want a path ending in %q", out, dirBase(dir))
		}
	})

	t.Run("missing binary wraps ErrProcessStart", func(t *testing.T) {
		_, err := r.Run(ctx, t.TempDir(), []string{"definitely-not-a-real-binary-9f2c"})
		if !errors.Is(err, command.ErrProcessStart) {
			t.Errorf("Run() error = %v, want ErrProcessStart", err)
		}
	})

	t.Run("nonzero exit returns output and error", func(t *testing.T) {
		out, err := r.Run(ctx, t.TempDir(), []string{"sh", "-c", "echo partial; exit 3"})
		if err == nil {
			t.Fatal("Run() expected an error for a nonzero exit")
		}
		if errors.Is(err, command.ErrProcessStart) {
			t.Error("nonzero exit must not be classified as a start failure")
		}
		if out != "partial" {
			t.Errorf("Run() output = %q, want %q", out, "partial")
		}
	})

	t.Run("empty argv", func(t *testing.T) {
		_, err := r.Run(ctx, t.TempDir(), nil)
		if !errors.Is(err, command.ErrInvalidArgument) {
			t.Errorf("Run() error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("own timeout is reported as such", func(t *testing.T) {
		timed := NewRunner(50 * time.Millisecond)
		_, err := timed.Run(ctx, t.TempDir(), []string{"sleep", "2"})
		if err == nil {
			t.Fatal("Run() expected a timeout error")
		}
		if !strings.Contains(err.Error(), "timed out after 50ms") {
			t.Errorf("Run() error = %v, want the runner's timeout named", err)
		}
	})

	t.Run("caller deadline is not blamed on a zero timeout", func(t *testing.T) {
		deadlined, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		_, err := r.Run(deadlined, t.TempDir(), []string{"sleep", "2"})
		if err == nil {
			t.Fatal("Run() expected an error for an exceeded caller deadline")
		}
		if strings.Contains(err.Error(), "timed out after") {
			t.Errorf("Run() error = %v, must not claim a runner timeout it never set", err)
		}
	})
}

func dirBase(path string) string {
	i := strings.LastIndex(path, "/")
	return path[i+1:]
}
